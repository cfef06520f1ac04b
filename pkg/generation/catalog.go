package generation

import "github.com/whalekit/strategist/pkg/models"

// scenarios is the immutable catalog of outreach use cases an operator can
// pick in step 1.
var scenarios = []models.Scenario{
	{
		ID:          "nurture",
		Title:       "线索培育",
		Description: "对新加好友做持续培育，把真客户和看热闹的分开",
		Icon:        "🌱",
	},
	{
		ID:          "invite",
		Title:       "活动邀约",
		Description: "围绕一场活动做节奏化邀约和到场提醒",
		Icon:        "📅",
	},
	{
		ID:          "launch",
		Title:       "产品发售",
		Description: "为一次发售做预热、开售和逼单的内容节奏",
		Icon:        "🚀",
	},
	{
		ID:          "delivery",
		Title:       "交付陪跑",
		Description: "成交后的交付跟进，降低流失并孵化复购",
		Icon:        "📦",
	},
}

// Scenarios returns a copy of the scenario catalog.
func Scenarios() []models.Scenario {
	return append([]models.Scenario(nil), scenarios...)
}

// ScenarioByID looks up one catalog scenario.
func ScenarioByID(id string) (models.Scenario, error) {
	for _, scenario := range scenarios {
		if scenario.ID == id {
			return scenario, nil
		}
	}

	return models.Scenario{}, ErrScenarioNotFound
}
