package render

import (
	"bytes"
	"embed"
	"html/template"

	"escola_crm/internal/domain/entities"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var proposalTmpl = template.Must(template.ParseFS(templateFS, "templates/proposal.html.tmpl"))
var contractTmpl = template.Must(template.ParseFS(templateFS, "templates/contract.html.tmpl"))

// ProposalContext is everything the proposal template needs: cover, budget
// table and the dynamic full-bleed background pages. Missing fields render
// blank — template gaps are never fatal.
type ProposalContext struct {
	Client     entities.Client
	Enrollment entities.Enrollment
	Course     entities.Course

	CoverURL   string
	ExtraPages []string
}

// ComposeProposalHTML builds the full proposal HTML: cover page, budget
// table and one background-only page per extra image.
func ComposeProposalHTML(ctx ProposalContext) (string, error) {
	var buf bytes.Buffer
	if err := proposalTmpl.Execute(&buf, ctx); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ContractContext wraps one resolved contract body for printing.
type ContractContext struct {
	Title string
	// Body is the shortcode-resolved contract text. It is trusted template
	// content authored by the school, not client input.
	Body template.HTML
}

func ComposeContractHTML(ctx ContractContext) (string, error) {
	var buf bytes.Buffer
	if err := contractTmpl.Execute(&buf, ctx); err != nil {
		return "", err
	}
	return buf.String(), nil
}
