package models

// BusinessInfo is a sparse record describing the operator's business. Every
// field is optional; an empty string means "not yet provided", never an
// error. The record starts empty and is filled in by merging extraction
// results and direct user edits.
type BusinessInfo struct {
	Industry           string   `json:"industry,omitempty"`
	ProductService     string   `json:"product_service,omitempty"`
	TargetAudience     string   `json:"target_audience,omitempty"`
	CoreAdvantages     string   `json:"core_advantages,omitempty"`
	UserPainPoints     string   `json:"user_pain_points,omitempty"`
	DecisionPoints     string   `json:"decision_points,omitempty"`
	ExpectedAction     string   `json:"expected_action,omitempty"`
	ContentCount       string   `json:"content_count,omitempty"`
	CommunicationStyle string   `json:"communication_style,omitempty"`
	AdditionalFiles    []string `json:"additional_files,omitempty"`
}

// Merge returns a copy of b with every provided field of partial applied on
// top. Empty fields in partial preserve the existing value, so repeated
// merges are additive rather than replacing.
func (b BusinessInfo) Merge(partial BusinessInfo) BusinessInfo {
	merged := b

	if partial.Industry != "" {
		merged.Industry = partial.Industry
	}

	if partial.ProductService != "" {
		merged.ProductService = partial.ProductService
	}

	if partial.TargetAudience != "" {
		merged.TargetAudience = partial.TargetAudience
	}

	if partial.CoreAdvantages != "" {
		merged.CoreAdvantages = partial.CoreAdvantages
	}

	if partial.UserPainPoints != "" {
		merged.UserPainPoints = partial.UserPainPoints
	}

	if partial.DecisionPoints != "" {
		merged.DecisionPoints = partial.DecisionPoints
	}

	if partial.ExpectedAction != "" {
		merged.ExpectedAction = partial.ExpectedAction
	}

	if partial.ContentCount != "" {
		merged.ContentCount = partial.ContentCount
	}

	if partial.CommunicationStyle != "" {
		merged.CommunicationStyle = partial.CommunicationStyle
	}

	if partial.AdditionalFiles != nil {
		merged.AdditionalFiles = append([]string(nil), partial.AdditionalFiles...)
	}

	return merged
}

// IsEmpty reports whether no field has been provided yet.
func (b BusinessInfo) IsEmpty() bool {
	return b.Industry == "" &&
		b.ProductService == "" &&
		b.TargetAudience == "" &&
		b.CoreAdvantages == "" &&
		b.UserPainPoints == "" &&
		b.DecisionPoints == "" &&
		b.ExpectedAction == "" &&
		b.ContentCount == "" &&
		b.CommunicationStyle == "" &&
		len(b.AdditionalFiles) == 0
}
