// Package editor は、スクリプトに対する構造的な編集操作の閉じた集合を提供します。
// すべての変更は Session を経由し、部分的に更新されたスクリプトが
// 外部から観測されることはありません。
package editor

import (
	"context"
	"sync"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

// ScriptStatus はセッション全体の進行状態です。
type ScriptStatus string

const (
	StatusReview     ScriptStatus = "REVIEW"
	StatusGenerating ScriptStatus = "GENERATING_IMAGES"
	StatusComplete   ScriptStatus = "COMPLETE"
)

// DescriptionRefiner は、キャプション編集後に描写プロンプトを再計算する
// ベストエフォートのコラボレーターです。失敗しても編集自体は成功します。
type DescriptionRefiner interface {
	Refine(ctx context.Context, caption, currentDescription, artStyle string) (string, error)
}

// PanelSuggester は、追加パネルの内容（描写+キャプション）を文脈から提案する
// ベストエフォートのコラボレーターです。
type PanelSuggester interface {
	Suggest(ctx context.Context, artStyle, chapterContext string, prev, next *domain.PanelSeed) (domain.PanelSeed, error)
}

// Session は単一のスクリプトを排他的に所有する編集セッションです。
// 変更操作は互いに直列化され、各操作は一貫したスナップショットから
// 次のスナップショットを導出します。非同期コラボレーターの結果は
// パネルIDで照合されるパッチとして適用されるため、適用前に
// 削除・並び替えが起きても安全です。
type Session struct {
	mu     sync.Mutex
	script domain.Script
	status ScriptStatus
	global domain.TextConfig

	artStyle  string
	refiner   DescriptionRefiner
	suggester PanelSuggester

	// inflight は未解決の提案・プロンプト再計算を追跡します。
	inflight sync.WaitGroup
}

// NewSession は初期化済みスクリプトから編集セッションを開始します。
// refiner / suggester は nil 可で、その場合は対応する補助機能が
// フォールバック動作のみになります。
func NewSession(script domain.Script, global domain.TextConfig, artStyle string, refiner DescriptionRefiner, suggester PanelSuggester) *Session {
	return &Session{
		script:    script.Clone(),
		status:    StatusReview,
		global:    global,
		artStyle:  artStyle,
		refiner:   refiner,
		suggester: suggester,
	}
}

// Snapshot は現在のスクリプトのディープコピーを返します。
// 呼び出し元がコピーを変更してもセッションには影響しません。
func (s *Session) Snapshot() domain.Script {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.script.Clone()
}

// Status はセッション全体の進行状態を返します。
func (s *Session) Status() ScriptStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// SetStatus はセッション全体の進行状態を更新します。
func (s *Session) SetStatus(st ScriptStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = st
}

// GlobalStyle は現在のグローバル文字設定を返します。
func (s *Session) GlobalStyle() domain.TextConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.global
}

// SetGlobalStyle はグローバル文字設定を置き換えます。FontSize はクランプされます。
func (s *Session) SetGlobalStyle(cfg domain.TextConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg.FontSize = domain.ClampFontScale(cfg.FontSize)
	s.global = cfg
}

// ArtStyle はこのセッションの画風指定を返します。
func (s *Session) ArtStyle() string {
	return s.artStyle
}

// Wait は未解決の非同期処理（パネル提案・プロンプト再計算）の完了を待ちます。
func (s *Session) Wait() {
	s.inflight.Wait()
}

// UpdatePanel はIDで照合したパネルに更新関数を適用します。
// 対象が既に存在しない場合は false を返し、何も変更しません。
// 非同期結果の適用は必ずこの経路を通します。
func (s *Session) UpdatePanel(id string, update func(p *domain.Panel)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pi, pj, ok := s.script.FindPanel(id)
	if !ok {
		return false
	}
	s.mutatePanel(pi, pj, update)
	return true
}

// mutatePanel はロック保持中にのみ呼ばれます。ページとパネルのスライスを
// 作り直してから差し替えることで、途中状態の共有を避けます。
func (s *Session) mutatePanel(pageIdx, panelIdx int, update func(p *domain.Panel)) {
	page := s.script.Pages[pageIdx].Clone()
	update(&page.Panels[panelIdx])
	pages := make([]domain.Page, len(s.script.Pages))
	copy(pages, s.script.Pages)
	pages[pageIdx] = page
	s.script.Pages = pages
}

// panelAt はロック保持中に境界チェック付きでパネルを取得します。
func (s *Session) panelAt(pageIdx, panelIdx int) (domain.Panel, bool) {
	if pageIdx < 0 || pageIdx >= len(s.script.Pages) {
		return domain.Panel{}, false
	}
	page := s.script.Pages[pageIdx]
	if panelIdx < 0 || panelIdx >= len(page.Panels) {
		return domain.Panel{}, false
	}
	return page.Panels[panelIdx].Clone(), true
}
