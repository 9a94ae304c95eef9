package entities

// MetadataEntry is one (enrollment_id, key, value) fact. Value is opaque
// text, often JSON-encoded; a key is unique per enrollment (set = upsert).
//
// Storage model (DynamoDB):
//   - PK: enrollment_id
//   - SK: meta_key
type MetadataEntry struct {
	EnrollmentID string `json:"enrollment_id"`
	Key          string `json:"meta_key"`
	Value        string `json:"meta_value"`
}

// Reserved metadata keys. Period-scoped facts use the same names suffixed
// with "_{periodToken}" (see PeriodScopedKey) so global and per-period
// values never collide.
const (
	// MetaKeyEnvelopeSent guards duplicate envelope dispatch. The value is
	// the provider response JSON after a successful send; MetaValueNotSent
	// is the explicit not-yet-sent sentinel.
	MetaKeyEnvelopeSent = "enviar_envelope"

	// MetaKeySignatureProcess stores the raw webhook payload snapshot for
	// audit, keyed per signature process.
	MetaKeySignatureProcess = "processo_assinatura"

	// MetaKeySignedDocuments stores the signed-artifact link map built by
	// the webhook handler.
	MetaKeySignedDocuments = "documentos_assinados"

	// MetaKeyProposalURL mirrors the public URL of the rendered proposal.
	MetaKeyProposalURL = "url_proposta"

	// MetaKeyContractDocs stores the ordered list of rendered contract
	// document URLs for the enrollment's current period.
	MetaKeyContractDocs = "documentos_contrato"

	// MetaConfigPrefix prefixes free-form client-submitted fields. Merge
	// order is fixed: the nested config object is applied first, then flat
	// prefixed keys, so flat keys win on collision.
	MetaConfigPrefix = "config_"

	MetaValueNotSent = "nao"
)

// PeriodScopedKey suffixes a reserved key with the period token.
func PeriodScopedKey(key, periodToken string) string {
	if periodToken == "" {
		return key
	}
	return key + "_" + periodToken
}
