package wizard

import (
	"fmt"
	"strings"

	"github.com/whalekit/strategist/pkg/models"
)

// Transcript copy lives here, away from the flow logic, mirroring how the
// product keeps its user-facing texts in one place.

const welcomeText = `嘿，朋友！

客户加了不知道怎么跟进？内容写不出来？用户分不清楚？别慌，这套助手就是来帮你搞定这些事儿的。说起来就是四步走：

第1️⃣步：选场景——培育、邀约、发售、交付，一次解决一个小问题
第2️⃣步：聊业务——你是做什么买卖的，客户啥样，想达到啥效果
第3️⃣步：生成内容——一套说人话、戳痛点的触达序列
第4️⃣步：用户分层——谁该培育谁该转化，安排清楚

行了废话不多说，右边挑一个场景，咱们开搞！`

const step1RedirectText = "请先在右侧选择一个业务场景，选好咱们再往下聊。"

const step2RedirectText = `⚠️ 请在右侧面板中填写业务信息！

右侧有专门的业务描述区域和文件上传入口，填写完成后点击「开始分析」即可。`

const generatingText = "终于开始了！现在就给你搞一套内容序列，请稍等片刻……"

const continueGeneratingText = "🎨 正在继续生成内容序列……✨ 请稍等片刻……"

const generationFailedText = "抱歉，内容生成遇到了问题。您之前的内容都还在，请稍后重试。"

const extractionFailedText = "抱歉，业务信息分析遇到了问题。请稍后重试，或者换个说法再描述一次。"

func scenarioChosenText(scenario models.Scenario) string {
	return fmt.Sprintf("我选择了「%s」场景", scenario.Title)
}

func scenarioConfirmText(scenario models.Scenario) string {
	return fmt.Sprintf(`%s？选得不错！

接下来具体聊聊你的业务：做什么买卖的、客户啥样、想达到啥效果。也可以直接上传现成的介绍材料，我来提取。`, scenario.Title)
}

func analyzeRequestText(description string, fileCount int) string {
	if description == "" {
		return fmt.Sprintf("我上传了 %d 份业务材料", fileCount)
	}

	if fileCount > 0 {
		return fmt.Sprintf("%s\n\n（附 %d 份材料）", description, fileCount)
	}

	return description
}

func extractionSummaryText(info models.BusinessInfo) string {
	field := func(value string) string {
		if value == "" {
			return "未填写"
		}

		return value
	}

	return fmt.Sprintf(`✅ 业务信息分析完成！

• 行业领域：%s
• 产品/服务：%s
• 目标受众：%s
• 核心优势：%s
• 用户痛点：%s
• 期望行动：%s
• 内容条数：%s
• 沟通风格：%s

信息有出入的话可以直接修改。确认无误后，咱们开始生成内容序列。`,
		field(info.Industry),
		field(info.ProductService),
		field(info.TargetAudience),
		field(info.CoreAdvantages),
		field(info.UserPainPoints),
		field(info.ExpectedAction),
		field(info.ContentCount),
		field(info.CommunicationStyle),
	)
}

func generationDoneText(batch []models.ContentSequence) string {
	lines := make([]string, 0, len(batch))

	for i, item := range batch {
		lines = append(lines, fmt.Sprintf("【%d】第%d天 - %s (私聊触达)", i+1, item.Days, item.Title))
	}

	return fmt.Sprintf(`🎉 搞定了！

给你整了几条内容先看看：
%s

哪里不对劲直接改，也可以再生成几条。改完咱们就配置用户分层，你说了算。`, strings.Join(lines, "\n"))
}

func continueDoneText(added, total, coverage int) string {
	return fmt.Sprintf(`✅ 已为您继续生成 %d 条内容！

现在总共有 %d 条内容，覆盖 %d 天。您可以继续编辑或预览内容，准备好后点击「确认内容」进入下一步。`, added, total, coverage)
}

func confirmContentText(total, coverage int) string {
	return fmt.Sprintf(`🎉 内容序列搞定了！

📊 最终配置：
• 内容数量：%d 条
• 覆盖天数：%d 天

最后一步最关键：配置用户分层策略。该培育的培育，该转化的转化，效率和转化率才能上得去。来，咱把分层也配置了。`, total, coverage)
}

func step3FeedbackText(input string) string {
	return fmt.Sprintf(`收到您的反馈！%s

内容序列已经生成完成，您可以在右侧面板中查看和编辑各个内容模板。现在让我们进入最后一步：配置用户分层策略。`, input)
}

const step4AckText = "收到！您可以在右侧面板中选择分层策略，也可以输入自定义的分层条件。"

func segmentAddedText(optionID, optionName string, seg models.UserSegment, reason string) string {
	var detail string

	switch {
	case optionID == "new":
		detail = "系统将自动为所有新添加的好友创建跟进SOP。"
	case seg.Type == models.SegmentAuto:
		detail = "系统将根据设定的条件自动为用户打标签。注意：部分功能可能需要额外配置。"
	case reason != "":
		detail = fmt.Sprintf("该条件暂时无法自动判断（%s），已创建手动标签组「%s」，您可以根据实际情况手动为用户打标签。", reason, seg.Tag)
	default:
		detail = fmt.Sprintf("已创建标签组「%s」，您可以根据实际情况手动为用户打标签。", seg.Tag)
	}

	text := fmt.Sprintf("✅ 已添加「%s」分层策略！\n\n%s", optionName, detail)

	if len(seg.Requirements) > 0 {
		text += fmt.Sprintf("\n\n需要配置：%s", strings.Join(seg.Requirements, "、"))
	}

	return text
}

func strategyCompleteText(contentCount, segmentCount int) string {
	return fmt.Sprintf(`🎉 恭喜！您的私域运营策略已创建完成：

📋 配置总结：
• 业务场景：已选择
• 业务信息：已分析提取
• 内容序列：已生成 %d 条
• 用户分层：%d 个分层

🚀 下一步建议：预览并调整内容模板、设置发送时间和频率、配置自动化触发条件，然后开始执行运营策略。`, contentCount, segmentCount)
}
