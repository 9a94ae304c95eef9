package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	mock_interfaces "escola_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMetadataUseCase_Set(t *testing.T) {
	t.Run("string values stored raw", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMetadataRepository(ctrl)
		uc := NewMetadataUseCase(repo)

		repo.EXPECT().Set(gomock.Any(), "enr-1", "url_proposta", "http://x/p.pdf").Return(nil)

		if err := uc.Set(context.Background(), "enr-1", "url_proposta", "http://x/p.pdf"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non string values json encoded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMetadataRepository(ctrl)
		uc := NewMetadataUseCase(repo)

		repo.EXPECT().Set(gomock.Any(), "enr-1", "config_parcelas", "12").Return(nil)
		repo.EXPECT().Set(gomock.Any(), "enr-1", "documentos_contrato", `[{"name":"c1","url_pdf":"http://x/c1.pdf"}]`).Return(nil)

		if err := uc.Set(context.Background(), "enr-1", "config_parcelas", 12); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		docs := []map[string]string{{"name": "c1", "url_pdf": "http://x/c1.pdf"}}
		if err := uc.Set(context.Background(), "enr-1", "documentos_contrato", docs); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty identifiers rejected", func(t *testing.T) {
		uc := NewMetadataUseCase(nil)
		if err := uc.Set(context.Background(), "", "k", "v"); err == nil {
			t.Fatalf("expected error")
		}
		if err := uc.Set(context.Background(), "enr-1", "", "v"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestMetadataUseCase_GetAll(t *testing.T) {
	t.Run("opportunistic json decode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMetadataRepository(ctrl)
		uc := NewMetadataUseCase(repo)

		repo.EXPECT().GetAll(gomock.Any(), "enr-1").Return(map[string]string{
			"enviar_envelope": "nao",
			"config_parcelas": "12",
			"processo":        `{"token":"abc"}`,
			"lista":           `["a","b"]`,
		}, nil)

		got, err := uc.GetAll(context.Background(), "enr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Plain strings stay raw, valid JSON comes back decoded.
		if got["enviar_envelope"] != "nao" {
			t.Fatalf("expected raw string, got %#v", got["enviar_envelope"])
		}
		if got["config_parcelas"] != float64(12) {
			t.Fatalf("expected decoded number, got %#v", got["config_parcelas"])
		}
		if !reflect.DeepEqual(got["processo"], map[string]any{"token": "abc"}) {
			t.Fatalf("expected decoded object, got %#v", got["processo"])
		}
		if !reflect.DeepEqual(got["lista"], []any{"a", "b"}) {
			t.Fatalf("expected decoded array, got %#v", got["lista"])
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMetadataRepository(ctrl)
		uc := NewMetadataUseCase(repo)

		repo.EXPECT().GetAll(gomock.Any(), "enr-1").Return(nil, errors.New("db"))

		if _, err := uc.GetAll(context.Background(), "enr-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
