package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"escola_crm/internal/domain/entities"
	"escola_crm/internal/usecase/interfaces"
)

// ResolveContractsInput carries everything the shortcode substitution needs.
type ResolveContractsInput struct {
	Enrollment entities.Enrollment
	Client     entities.Client
	Course     entities.Course
	Period     entities.Period
}

// ResolvedContract is a contract template with every known shortcode replaced.
type ResolvedContract struct {
	ContractID string
	Title      string
	Body       string
}

type IContractResolver interface {
	ResolveForPeriod(ctx context.Context, in ResolveContractsInput) ([]ResolvedContract, error)
}

type ContractResolver struct {
	contracts interfaces.IContractRepository
}

var _ IContractResolver = (*ContractResolver)(nil)

func NewContractResolver(contracts interfaces.IContractRepository) *ContractResolver {
	return &ContractResolver{contracts: contracts}
}

// ResolveForPeriod loads every contract template attached to the period and
// substitutes [shortcode] markers against the flattened enrollment context.
// Shortcodes with no matching context key are left verbatim in the body.
// Templates referenced by the period but missing from the catalog are skipped.
func (r *ContractResolver) ResolveForPeriod(ctx context.Context, in ResolveContractsInput) ([]ResolvedContract, error) {
	if len(in.Period.ContractIDs) == 0 {
		return nil, nil
	}

	fields := flattenContractContext(in)

	resolved := make([]ResolvedContract, 0, len(in.Period.ContractIDs))
	for _, contractID := range in.Period.ContractIDs {
		contract, err := r.contracts.GetByID(ctx, contractID)
		if err != nil {
			return nil, err
		}
		if contract.ID == "" {
			log.Printf("[contract][usecase] template missing, skipping contract_id=%s period_id=%s", contractID, in.Period.ID)
			continue
		}

		resolved = append(resolved, ResolvedContract{
			ContractID: contract.ID,
			Title:      substituteShortcodes(contract.Title, fields),
			Body:       substituteShortcodes(contract.Body, fields),
		})
	}
	return resolved, nil
}

func substituteShortcodes(text string, fields map[string]string) string {
	for key, value := range fields {
		text = strings.ReplaceAll(text, "["+key+"]", value)
	}
	return text
}

func flattenContractContext(in ResolveContractsInput) map[string]string {
	fields := map[string]string{
		"nome_aluno":           in.Client.Name,
		"email_aluno":          in.Client.Email,
		"cpf_aluno":            in.Client.CPF,
		"telefone_aluno":       in.Client.Phone,
		"nacionalidade":        in.Client.Nationality,
		"documento_identidade": in.Client.IdentityDoc,
		"data_nascimento":      in.Client.BirthDate,
		"endereco":             in.Client.Address.Street,
		"numero":               in.Client.Address.Number,
		"bairro":               in.Client.Address.District,
		"cidade":               in.Client.Address.City,
		"estado":               in.Client.Address.State,
		"cep":                  in.Client.Address.ZipCode,
		"nome_curso":           in.Course.Name,
		"nome_periodo":         in.Period.Name,
		"carga_horaria":        fmt.Sprintf("%d", in.Period.Hours),
		"valor_subtotal":       formatCurrency(in.Enrollment.Subtotal),
		"valor_desconto":       formatCurrency(in.Enrollment.Discount),
		"valor_total":          formatCurrency(in.Enrollment.Total),
		"data_atual":           time.Now().Format("02/01/2006"),
	}
	return fields
}

func formatCurrency(v float64) string {
	return strings.Replace(fmt.Sprintf("R$ %.2f", v), ".", ",", 1)
}
