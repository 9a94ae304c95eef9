package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"escola_crm/internal/domain/entities"
	mock_interfaces "escola_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func resolveInputFixture() ResolveContractsInput {
	return ResolveContractsInput{
		Enrollment: entities.Enrollment{ID: "enr-1", Subtotal: 1200, Discount: 200, Total: 1000},
		Client: entities.Client{
			ID:    "cli-1",
			Name:  "Maria Souza",
			Email: "maria@example.com",
			CPF:   "12345678901",
		},
		Course: entities.Course{ID: "course-1", Name: "Gastronomia"},
		Period: entities.Period{
			ID:          "per-1",
			Name:        "Módulo 1",
			Token:       "modulo_1",
			Hours:       120,
			ContractIDs: []string{"ct-1"},
		},
	}
}

func TestContractResolver_ResolveForPeriod(t *testing.T) {
	t.Run("substitutes known shortcodes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		r := NewContractResolver(contracts)

		contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{
			ID:    "ct-1",
			Title: "Contrato [nome_curso]",
			Body:  "Aluno [nome_aluno], CPF [cpf_aluno], módulo [nome_periodo], total [valor_total].",
		}, nil)

		resolved, err := r.ResolveForPeriod(context.Background(), resolveInputFixture())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resolved) != 1 {
			t.Fatalf("expected 1 contract, got %d", len(resolved))
		}
		if resolved[0].Title != "Contrato Gastronomia" {
			t.Fatalf("unexpected title: %q", resolved[0].Title)
		}
		body := resolved[0].Body
		for _, want := range []string{"Maria Souza", "12345678901", "Módulo 1", "R$ 1000,00"} {
			if !strings.Contains(body, want) {
				t.Fatalf("expected %q in body: %q", want, body)
			}
		}
		if strings.Contains(body, "[") {
			t.Fatalf("expected every shortcode resolved: %q", body)
		}
	})

	t.Run("unknown shortcodes stay verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		r := NewContractResolver(contracts)

		contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{
			ID:   "ct-1",
			Body: "Cláusula [clausula_inexistente] permanece.",
		}, nil)

		resolved, err := r.ResolveForPeriod(context.Background(), resolveInputFixture())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resolved[0].Body, "[clausula_inexistente]") {
			t.Fatalf("expected unresolved shortcode kept: %q", resolved[0].Body)
		}
	})

	t.Run("missing templates are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		r := NewContractResolver(contracts)

		in := resolveInputFixture()
		in.Period.ContractIDs = []string{"gone", "ct-1"}
		contracts.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Contract{}, nil)
		contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", Body: "ok"}, nil)

		resolved, err := r.ResolveForPeriod(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resolved) != 1 || resolved[0].ContractID != "ct-1" {
			t.Fatalf("unexpected result: %+v", resolved)
		}
	})

	t.Run("no contracts configured", func(t *testing.T) {
		r := NewContractResolver(nil)
		in := resolveInputFixture()
		in.Period.ContractIDs = nil

		resolved, err := r.ResolveForPeriod(context.Background(), in)
		if err != nil || resolved != nil {
			t.Fatalf("expected empty result, got %v %v", resolved, err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		r := NewContractResolver(contracts)

		contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{}, errors.New("db"))

		if _, err := r.ResolveForPeriod(context.Background(), resolveInputFixture()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
