// Package web provides HTTP request and response types for the strategist API.
package web

import "github.com/whalekit/strategist/pkg/models"

// SetStepRequest represents the request body for direct step navigation.
type SetStepRequest struct {
	Step int `json:"step" validate:"required,min=1,max=4"`
}

// SubmitMessageRequest represents the request body for free-text chat input.
type SubmitMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// SelectScenarioRequest represents the request body for choosing a scenario.
type SelectScenarioRequest struct {
	ScenarioID string `json:"scenario_id" validate:"required"`
}

// AnalyzeBusinessRequest represents the request body for business analysis.
// Files are opaque references; at least one of the two fields must be set,
// which the service enforces rather than the validator.
type AnalyzeBusinessRequest struct {
	Description string   `json:"description"`
	Files       []string `json:"files,omitempty"`
}

// UpdateBusinessRequest represents the request body for a partial business
// info edit. All fields are optional; empty fields leave the record alone.
type UpdateBusinessRequest struct {
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

// ToModel converts the request into the partial merge record.
func (r UpdateBusinessRequest) ToModel() models.BusinessInfo {
	return models.BusinessInfo{
		Industry:           r.Industry,
		ProductService:     r.ProductService,
		TargetAudience:     r.TargetAudience,
		CoreAdvantages:     r.CoreAdvantages,
		UserPainPoints:     r.UserPainPoints,
		DecisionPoints:     r.DecisionPoints,
		ExpectedAction:     r.ExpectedAction,
		ContentCount:       r.ContentCount,
		CommunicationStyle: r.CommunicationStyle,
		AdditionalFiles:    r.AdditionalFiles,
	}
}

// EditContentRequest represents the request body for editing one content
// item. All fields are optional; at least one must be set.
type EditContentRequest struct {
	Days        *int    `json:"days,omitempty"        validate:"omitempty,min=1"`
	Title       *string `json:"title,omitempty"       validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
	Time        *string `json:"time,omitempty"`
}

// ToPatch converts the request into the engine's patch form.
func (r EditContentRequest) ToPatch() models.ContentPatch {
	return models.ContentPatch{
		Days:        r.Days,
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		Time:        r.Time,
	}
}

// OpenEditorRequest represents the request body for opening the editor. An
// empty content id opens a blank editor.
type OpenEditorRequest struct {
	ContentID string `json:"content_id,omitempty"`
}

// ApplySegmentRequest represents the request body for applying a
// segmentation option. Condition is required for the condition-based
// options; Tag overrides the suggested tag.
type ApplySegmentRequest struct {
	OptionID  string `json:"option_id" validate:"required"`
	Condition string `json:"condition,omitempty"`
	Tag       string `json:"tag,omitempty"`
}

// ClassifyRequest represents the request body for a dry-run classification.
type ClassifyRequest struct {
	Condition string `json:"condition" validate:"required"`
}
