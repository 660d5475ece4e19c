package game

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// maxLeaderboardEntries 排行榜最多保留的记录条数
const maxLeaderboardEntries = 10

// LeaderboardEntry 排行榜单条记录
type LeaderboardEntry struct {
	Name       string `yaml:"name"`       // 玩家名
	Score      int    `yaml:"score"`      // 最终得分
	Wave       int    `yaml:"wave"`       // 到达的波次
	Difficulty string `yaml:"difficulty"` // 难度ID
	Date       string `yaml:"date"`       // 记录日期（YYYY-MM-DD）
}

// leaderboardData 排行榜持久化结构
type leaderboardData struct {
	Entries []LeaderboardEntry `yaml:"entries"`
}

// 存储路径常量
const (
	leaderboardObject   = "leaderboard"
	leaderboardProperty = "scores"
)

// LeaderboardManager 排行榜管理器
// 维护按得分降序的前十名记录，通过 gdata 跨平台持久化
type LeaderboardManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存记录）
	entries      []LeaderboardEntry
}

// NewLeaderboardManager 创建排行榜管理器实例
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式）
func NewLeaderboardManager(gdataManager *gdata.Manager) (*LeaderboardManager, error) {
	lm := &LeaderboardManager{
		gdataManager: gdataManager,
	}

	if err := lm.Load(); err != nil {
		// 加载失败不是致命错误，从空榜开始
		log.Printf("[LeaderboardManager] Warning: Failed to load leaderboard: %v (starting empty)", err)
	}

	return lm, nil
}

// Load 从 gdata 加载排行榜
func (lm *LeaderboardManager) Load() error {
	if lm.gdataManager == nil {
		return nil
	}

	if !lm.gdataManager.ObjectPropExists(leaderboardObject, leaderboardProperty) {
		return nil
	}

	data, err := lm.gdataManager.LoadObjectProp(leaderboardObject, leaderboardProperty)
	if err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}

	var loaded leaderboardData
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}

	// 丢弃损坏的记录，不让坏数据进入榜单
	lm.entries = lm.entries[:0]
	dropped := 0
	for _, entry := range loaded.Entries {
		if entry.Name == "" || entry.Score < 0 || entry.Wave < 0 {
			dropped++
			continue
		}
		lm.entries = append(lm.entries, entry)
	}
	lm.sortAndTrim()

	if dropped > 0 {
		log.Printf("[LeaderboardManager] Dropped %d malformed entries", dropped)
	}
	log.Printf("[LeaderboardManager] Loaded %d entries", len(lm.entries))
	return nil
}

// Save 保存排行榜到 gdata
func (lm *LeaderboardManager) Save() error {
	if lm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&leaderboardData{Entries: lm.entries})
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	if err := lm.gdataManager.SaveObjectProp(leaderboardObject, leaderboardProperty, data); err != nil {
		return fmt.Errorf("failed to save leaderboard: %w", err)
	}

	return nil
}

// Submit 提交一局成绩并立即持久化
//
// 返回该成绩在榜上的名次（1 开始）；未进前十返回 0。
func (lm *LeaderboardManager) Submit(name string, score, wave int, difficulty string) int {
	entry := LeaderboardEntry{
		Name:       name,
		Score:      score,
		Wave:       wave,
		Difficulty: difficulty,
		Date:       time.Now().Format("2006-01-02"),
	}

	lm.entries = append(lm.entries, entry)
	lm.sortAndTrim()

	rank := 0
	for i, e := range lm.entries {
		if e == entry {
			rank = i + 1
			break
		}
	}

	if err := lm.Save(); err != nil {
		log.Printf("[LeaderboardManager] Warning: Failed to save leaderboard: %v", err)
	}
	return rank
}

// IsHighScore 判断给定分数能否进入排行榜
func (lm *LeaderboardManager) IsHighScore(score int) bool {
	if len(lm.entries) < maxLeaderboardEntries {
		return score > 0
	}
	return score > lm.entries[len(lm.entries)-1].Score
}

// Entries 返回当前排行榜记录（按得分降序）
func (lm *LeaderboardManager) Entries() []LeaderboardEntry {
	return lm.entries
}

// sortAndTrim 按得分降序排序并截断到条数上限
// 同分时先提交的记录排前
func (lm *LeaderboardManager) sortAndTrim() {
	sort.SliceStable(lm.entries, func(i, j int) bool {
		return lm.entries[i].Score > lm.entries[j].Score
	})
	if len(lm.entries) > maxLeaderboardEntries {
		lm.entries = lm.entries[:maxLeaderboardEntries]
	}
}
