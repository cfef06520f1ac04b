// Package segment turns catalog choices and free-text targeting conditions
// into taggable user segments, and classifies whether a condition can be
// applied automatically by the system or needs the operator's judgement.
package segment

import (
	"regexp"
	"strings"
)

// Classification is the outcome of analysing a free-text targeting
// condition. Automatable=false is a normal result, not an error: the reason
// is surfaced to the operator and the segment falls back to manual tagging.
type Classification struct {
	Automatable  bool     `json:"automatable"`
	Reason       string   `json:"reason,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	SuggestedTag string   `json:"suggested_tag,omitempty"`
}

// Reasons surfaced to the operator when a condition cannot be automated.
const (
	ReasonNoQuantity = "condition must contain a concrete quantity (a number followed by a unit)"
	ReasonNoKeyword  = "condition must contain an automatable behavior or state keyword"
)

// Integrations a segment may require before automation can run.
const (
	RequirementOrderSystem         = "order system integration"
	RequirementViewTracking        = "page view event tracking"
	RequirementConversationArchive = "conversation archive access"
)

// quantityPattern matches a number followed by a unit-like token, e.g.
// "3次", "7 days", "2单". A condition without one is not system-checkable.
var quantityPattern = regexp.MustCompile(`[0-9]+\s*[\p{Han}\p{L}]`)

// orderKeywords and viewKeywords narrow the behavioral category's required
// integrations: order state lives in the order system, view events need
// tracking to be set up.
var (
	orderKeywords = []string{"下单", "购买", "支付", "order", "purchase", "pay"}
	viewKeywords  = []string{"浏览", "点击", "访问", "view", "click", "visit"}
)

// category is one row of the classifier's rule table. Categories are
// evaluated in declaration order and the first whose keyword set intersects
// the text wins, so tie-breaks are deterministic and testable.
type category struct {
	name         string
	keywords     []string
	requirements func(text string) []string
}

var categories = []category{
	{
		name: "behavioral",
		keywords: []string{
			"浏览", "点击", "访问", "收藏", "加购", "下单", "购买", "支付", "登录", "注册",
			"view", "click", "visit", "favorite", "add-to-cart", "order", "purchase", "pay", "login", "register",
		},
		requirements: func(text string) []string {
			var reqs []string

			if containsAny(text, orderKeywords) {
				reqs = append(reqs, RequirementOrderSystem)
			}

			if containsAny(text, viewKeywords) {
				reqs = append(reqs, RequirementViewTracking)
			}

			return reqs
		},
	},
	{
		name: "interaction",
		keywords: []string{
			"发消息", "消息", "互动", "回复", "咨询", "提问",
			"message", "interact", "reply", "consult", "ask",
		},
		requirements: func(string) []string {
			return []string{RequirementConversationArchive}
		},
	},
	{
		name: "temporal",
		keywords: []string{
			"加入", "注册", "关注", "首次", "最近",
			"join", "register", "follow", "first", "last",
		},
		// Join/follow timestamps are already on the contact record.
		requirements: func(string) []string { return nil },
	},
}

// ClassifyCondition analyses a free-text targeting condition. It never
// errors: an unclassifiable condition yields Automatable=false with a
// human-readable reason.
func ClassifyCondition(text string) Classification {
	normalized := strings.ToLower(strings.TrimSpace(text))

	if !quantityPattern.MatchString(normalized) {
		return Classification{
			Automatable:  false,
			Reason:       ReasonNoQuantity,
			SuggestedTag: SuggestTag(text),
		}
	}

	for _, cat := range categories {
		if !containsAny(normalized, cat.keywords) {
			continue
		}

		return Classification{
			Automatable:  true,
			Requirements: cat.requirements(normalized),
			SuggestedTag: SuggestTag(text),
		}
	}

	return Classification{
		Automatable:  false,
		Reason:       ReasonNoKeyword,
		SuggestedTag: SuggestTag(text),
	}
}

// tagMarkers are domain tokens that usually end a natural tag phrase, e.g.
// "3次购买的用户" tags as itself up to and including "用户".
var tagMarkers = []string{"用户", "客户", "customer", "user"}

const (
	fallbackTagStem   = 10 // runes kept from the raw text
	fallbackTagSuffix = "用户"
)

// SuggestTag derives a non-empty, bounded tag from the condition text: the
// substring up to and including the first domain-marker token when one is
// present, otherwise a truncated stem plus a fixed suffix.
func SuggestTag(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fallbackTagSuffix
	}

	lower := strings.ToLower(trimmed)
	markerAt := -1
	markerEnd := 0

	for _, marker := range tagMarkers {
		idx := strings.Index(lower, marker)
		if idx >= 0 && (markerAt < 0 || idx < markerAt) {
			markerAt = idx
			markerEnd = idx + len(marker)
		}
	}

	if markerAt >= 0 {
		return trimmed[:markerEnd]
	}

	runes := []rune(trimmed)
	if len(runes) > fallbackTagStem {
		runes = runes[:fallbackTagStem]
	}

	return string(runes) + fallbackTagSuffix
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}

	return false
}
