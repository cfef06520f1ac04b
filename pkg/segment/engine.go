package segment

import (
	"github.com/google/uuid"
	"github.com/whalekit/strategist/pkg/models"
)

// Display colors per segment type, matching the product's tag palette.
const (
	colorNew    = "#3b82f6"
	colorAuto   = "#8b5cf6"
	colorManual = "#f59e0b"
)

const (
	newCustomerName = "新客户自动跟进"
	newCustomerTag  = "新客户"
)

// NewCustomerSegment produces the fixed new-customer segment: every newly
// added contact gets the tag, no condition involved. Each call assigns a
// fresh follow-up task id. A session holds at most one new-customer segment;
// re-selecting the option replaces the prior one.
func NewCustomerSegment() models.UserSegment {
	return models.UserSegment{
		ID:     uuid.New().String(),
		Name:   newCustomerName,
		Type:   models.SegmentNew,
		Color:  colorNew,
		Tag:    newCustomerTag,
		TaskID: uuid.New().String(),
	}
}

// ConditionSegment classifies a free-text targeting condition and produces
// the resulting segment: automatable conditions become auto-tagged segments
// with their required integrations attached, everything else falls back to a
// manual tag. overrideTag, when non-empty, wins over the suggested tag.
func ConditionSegment(text, overrideTag string) (models.UserSegment, Classification) {
	classification := ClassifyCondition(text)

	tag := classification.SuggestedTag
	if overrideTag != "" {
		tag = overrideTag
	}

	segmentType := models.SegmentManual
	color := colorManual

	if classification.Automatable {
		segmentType = models.SegmentAuto
		color = colorAuto
	}

	return models.UserSegment{
		ID:           uuid.New().String(),
		Name:         tag,
		Type:         segmentType,
		Criteria:     text,
		Requirements: classification.Requirements,
		Color:        color,
		Tag:          tag,
		TaskID:       uuid.New().String(),
	}, classification
}

// ManualConditionSegment produces a manually applied tag group for the given
// condition, regardless of whether the classifier could automate it. The
// classifier still contributes the tag suggestion.
func ManualConditionSegment(text, overrideTag string) models.UserSegment {
	tag := overrideTag
	if tag == "" {
		tag = SuggestTag(text)
	}

	return models.UserSegment{
		ID:       uuid.New().String(),
		Name:     tag,
		Type:     models.SegmentManual,
		Criteria: text,
		Color:    colorManual,
		Tag:      tag,
		TaskID:   uuid.New().String(),
	}
}

// options is the segmentation-step catalog. The preset segments are
// previews; concrete segments are produced by NewCustomerSegment and
// ConditionSegment when an option is applied.
var options = []models.SegmentOption{
	{
		ID:          "new",
		Name:        "新客户SOP",
		Description: "为所有新添加的好友自动创建跟进SOP",
		Segments: []models.UserSegment{
			{
				ID:    "preview-new-followup",
				Name:  newCustomerName,
				Type:  models.SegmentNew,
				Color: colorNew,
				Tag:   newCustomerTag,
			},
		},
	},
	{
		ID:          "auto",
		Name:        "自动标签",
		Description: "根据设定的行为条件自动为用户打标签，部分功能需要额外配置",
		Segments: []models.UserSegment{
			{
				ID:           "preview-auto-purchase",
				Name:         "3次购买的用户",
				Type:         models.SegmentAuto,
				Criteria:     "3次购买的用户",
				Requirements: []string{RequirementOrderSystem},
				Color:        colorAuto,
				Tag:          "3次购买的用户",
			},
			{
				ID:           "preview-auto-consult",
				Name:         "咨询2次未下单",
				Type:         models.SegmentAuto,
				Criteria:     "咨询2次未下单的用户",
				Requirements: []string{RequirementConversationArchive},
				Color:        colorAuto,
				Tag:          "咨询2次未下单",
			},
		},
	},
	{
		ID:          "manual",
		Name:        "手动标签",
		Description: "创建标签组，由运营人员根据实际情况手动为用户打标签",
		Segments: []models.UserSegment{
			{
				ID:       "preview-manual-vip",
				Name:     "VIP客户",
				Type:     models.SegmentManual,
				Criteria: "VIP客户",
				Color:    colorManual,
				Tag:      "VIP客户",
			},
		},
	},
}

// Options returns the segmentation-step catalog. The result is a copy;
// catalog entries are immutable.
func Options() []models.SegmentOption {
	copied := make([]models.SegmentOption, len(options))

	for i, option := range options {
		copied[i] = option
		copied[i].Segments = append([]models.UserSegment(nil), option.Segments...)
	}

	return copied
}

// OptionByID looks up one catalog option; ok is false for unknown ids.
func OptionByID(id string) (models.SegmentOption, bool) {
	for _, option := range options {
		if option.ID == id {
			found := option
			found.Segments = append([]models.UserSegment(nil), option.Segments...)

			return found, true
		}
	}

	return models.SegmentOption{}, false
}
