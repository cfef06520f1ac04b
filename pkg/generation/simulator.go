package generation

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/whalekit/strategist/pkg/models"
)

// contentTemplate is one canned outreach message the simulator draws from.
type contentTemplate struct {
	title       string
	description string
	content     string
	time        string
}

// templates holds per-scenario message pools. The simulator picks a rotating
// window into the pool so consecutive calls differ, like a generative
// backend would.
var templates = map[string][]contentTemplate{
	"nurture": {
		{"破冰寒暄", "第一条私聊，自我介绍并给出一个低门槛互动点", "您好呀，我是刚加您的顾问小鲸。给您备了一份行业避坑清单，需要的话回个「1」我发您～", "09:30:00"},
		{"价值内容分享", "分享一条与痛点强相关的干货内容", "很多朋友最近都在问同一个问题，我把答案整理成了三分钟就能看完的小文，您看完有想法随时聊。", "10:00:00"},
		{"案例见证", "用同类客户的结果建立信任", "跟您情况很像的一位客户，上个月按这套方法调整后咨询量翻了一倍。过程我可以发您参考下。", "14:30:00"},
		{"痛点共鸣", "点出典型痛点并预告解决思路", "是不是也遇到过：加了很多好友，却不知道第二句话说什么？明天我把我们的跟进节奏表发您。", "11:00:00"},
		{"轻邀约", "给出一个低压力的下一步动作", "这周我们有个 20 分钟的小型答疑会，不讲产品只拆问题，给您留个位置？", "16:00:00"},
	},
	"invite": {
		{"活动预告", "第一次触达，抛出活动亮点", "下周四晚上有场闭门分享，主题正好是您上次提到的获客难题，先把时间给您占上？", "10:00:00"},
		{"嘉宾亮点", "用嘉宾背书提升期待", "这次的分享嘉宾操盘过三个从 0 到 1 的私域项目，实操细节会讲得很透。", "15:00:00"},
		{"稀缺提醒", "名额类信息制造紧迫感", "名额只剩最后十来个了，您要确定来的话我现在就帮您锁定。", "11:30:00"},
		{"开场前提醒", "活动前一天的到场提醒", "明晚八点开始，提前五分钟进就行，链接我到时候单独发您。", "20:00:00"},
		{"会后跟进", "活动结束后的内容沉淀触达", "昨晚的实录和笔记整理好了，发您一份，重点看第三部分。", "10:30:00"},
	},
	"launch": {
		{"预热种草", "发售前的需求唤醒", "这半年打磨的新方案下周正式开放，先透露一个大家最关心的点：这次把门槛降下来了。", "09:00:00"},
		{"开售通知", "开售当天的正式触达", "今天上午十点正式开放报名，前 20 名有一对一诊断名额，给您留一个？", "10:00:00"},
		{"答疑消障", "处理常见异议", "整理了大家问得最多的五个问题，逐条回了，您看看有没有说到您心坎上。", "14:00:00"},
		{"倒计时逼单", "截止前的临门一脚", "今晚十二点关闭通道，犹豫的话我们通个电话，五分钟帮您判断适不适合。", "19:30:00"},
		{"结束感谢", "发售收尾与未成交者的台阶", "这期就到这里，没赶上的朋友别急，我把下期优先名单先给您排上。", "21:00:00"},
	},
	"delivery": {
		{"开营欢迎", "成交后的第一条交付触达", "欢迎正式加入！接下来 14 天我会全程陪跑，今天先完成第一步：把基础资料发我。", "09:00:00"},
		{"进度关怀", "交付中期的主动回访", "到第三天了，进展如何？卡住的话别硬扛，把截图发我，今天帮您捋顺。", "11:00:00"},
		{"里程碑庆祝", "强化已获得的价值", "您的第一阶段数据出来了，比基准高出不少，继续保持这个节奏。", "15:00:00"},
		{"复盘建议", "交付后期的优化建议", "帮您做了个小复盘，两个地方再调一下，效果还能再上一个台阶。", "14:00:00"},
		{"续费铺垫", "孵化复购的软性触达", "陪跑快收尾了，下一阶段的进阶计划我先发您看看，合适咱们再聊。", "16:30:00"},
	},
}

// extraction keyword table: industry guesses for the simulated business-info
// extractor.
var industryKeywords = map[string]string{
	"教育":      "教育培训",
	"课程":      "教育培训",
	"电商":      "电商零售",
	"零售":      "电商零售",
	"健身":      "健康健身",
	"瑜伽":      "健康健身",
	"saas":    "企业服务",
	"软件":      "企业服务",
	"咨询":      "专业服务",
	"fitness": "健康健身",
	"course":  "教育培训",
}

// Simulator fakes the generation backend: scenario-specific canned batches
// with per-call variance, simulated latency and an injectable failure rate.
// It never returns a nil batch on success.
type Simulator struct {
	latency     time.Duration
	failureRate float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithLatency sets the simulated per-call latency. Zero disables the delay,
// which tests rely on.
func WithLatency(d time.Duration) SimulatorOption {
	return func(s *Simulator) { s.latency = d }
}

// WithFailureRate sets the probability (0..1) that a call fails with
// ErrGenerationFailed.
func WithFailureRate(rate float64) SimulatorOption {
	return func(s *Simulator) { s.failureRate = rate }
}

// WithSeed makes the simulator's variance reproducible.
func WithSeed(seed int64) SimulatorOption {
	return func(s *Simulator) { s.rnd = rand.New(rand.NewSource(seed)) }
}

// NewSimulator creates a simulated generator. Defaults: 800ms latency, no
// failures, time-seeded variance.
func NewSimulator(opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		latency: 800 * time.Millisecond,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GenerateContent returns a scenario-specific batch with days starting at 1
// and order matching days. The batch size and the window into the template
// pool vary per call.
func (s *Simulator) GenerateContent(ctx context.Context, scenarioID string) ([]models.ContentSequence, error) {
	pool, ok := templates[scenarioID]
	if !ok {
		return nil, ErrScenarioNotFound
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	if s.shouldFail() {
		return nil, fmt.Errorf("%w: content service rejected scenario %q", ErrGenerationFailed, scenarioID)
	}

	s.mu.Lock()
	size := 3 + s.rnd.Intn(2)
	offset := s.rnd.Intn(len(pool))
	s.mu.Unlock()

	batch := make([]models.ContentSequence, 0, size)

	for i := range size {
		tpl := pool[(offset+i)%len(pool)]
		batch = append(batch, models.ContentSequence{
			ID:          uuid.New().String(),
			Title:       tpl.title,
			Description: tpl.description,
			Content:     tpl.content,
			Order:       i + 1,
			Days:        i + 1,
			Time:        tpl.time,
			Type:        models.ChannelPrivate,
		})
	}

	return batch, nil
}

// ExtractBusinessInfo derives a sparse business record from the free-text
// description with cheap keyword heuristics. File contents are never parsed;
// only the names are carried through.
func (s *Simulator) ExtractBusinessInfo(ctx context.Context, description string, files []string) (models.BusinessInfo, error) {
	if err := s.wait(ctx); err != nil {
		return models.BusinessInfo{}, err
	}

	if s.shouldFail() {
		return models.BusinessInfo{}, fmt.Errorf("%w: extraction service unavailable", ErrGenerationFailed)
	}

	lower := strings.ToLower(description)
	info := models.BusinessInfo{
		Industry:           "通用服务",
		TargetAudience:     "有明确需求但决策周期较长的潜在客户",
		UserPainPoints:     "信息过载，难以判断哪家可信",
		ExpectedAction:     "完成首次咨询并留下联系方式",
		ContentCount:       "7",
		CommunicationStyle: "专业顾问，说人话不端着",
	}

	for keyword, industry := range industryKeywords {
		if strings.Contains(lower, keyword) {
			info.Industry = industry

			break
		}
	}

	if summary := firstSentence(description); summary != "" {
		info.ProductService = summary
	}

	if len(files) > 0 {
		info.AdditionalFiles = append([]string(nil), files...)
	}

	return info, nil
}

func (s *Simulator) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Simulator) shouldFail() bool {
	if s.failureRate <= 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.Float64() < s.failureRate
}

// firstSentence truncates the description to its first sentence-like chunk,
// bounded at 40 runes.
func firstSentence(text string) string {
	trimmed := strings.TrimSpace(text)

	if idx := strings.IndexAny(trimmed, "。！？.!?\n"); idx > 0 {
		trimmed = trimmed[:idx]
	}

	runes := []rune(trimmed)
	if len(runes) > 40 {
		trimmed = string(runes[:40])
	}

	return trimmed
}
