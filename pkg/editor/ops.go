package editor

import "github.com/shouni/go-comic-kit/pkg/domain"

// Direction はパネル移動の向きです。
type Direction string

const (
	MovePrev Direction = "prev"
	MoveNext Direction = "next"
)

// 編集操作はすべて全域的（total）です。範囲外のインデックスや
// 満たされない前提条件は panic せず no-op として扱います。

// SetPageLayout はページのレイアウトモードを置き換えます。
// 各パネルの Span には触れません。
func (s *Session) SetPageLayout(pageIdx int, layout domain.Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pageIdx < 0 || pageIdx >= len(s.script.Pages) {
		return
	}
	page := s.script.Pages[pageIdx].Clone()
	page.Layout = layout
	s.replacePage(pageIdx, page)
}

// UpdateDescription は描写プロンプトを直接設定します。副作用はありません。
func (s *Session) UpdateDescription(pageIdx, panelIdx int, value string) {
	s.updateField(pageIdx, panelIdx, func(p *domain.Panel) { p.Description = value })
}

// UpdateCaption はキャプションを直接設定します。副作用はありません。
// 描写プロンプトの再計算を伴う確定編集には CommitCaption を使います。
func (s *Session) UpdateCaption(pageIdx, panelIdx int, value string) {
	s.updateField(pageIdx, panelIdx, func(p *domain.Panel) { p.Caption = value })
}

// MovePanel はパネルを隣接位置と入れ替えます。移動先が範囲外なら no-op です。
func (s *Session) MovePanel(pageIdx, panelIdx int, dir Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pageIdx < 0 || pageIdx >= len(s.script.Pages) {
		return
	}
	page := s.script.Pages[pageIdx].Clone()
	if panelIdx < 0 || panelIdx >= len(page.Panels) {
		return
	}
	target := panelIdx - 1
	if dir == MoveNext {
		target = panelIdx + 1
	}
	if target < 0 || target >= len(page.Panels) {
		return
	}
	page.Panels[panelIdx], page.Panels[target] = page.Panels[target], page.Panels[panelIdx]
	s.replacePage(pageIdx, page)
}

// ResizePanel はパネルの Span を設定します。1 か 2 以外は no-op です。
// 同じ値の再適用は冪等です。
func (s *Session) ResizePanel(pageIdx, panelIdx int, span domain.Span) {
	if span != domain.SpanHalf && span != domain.SpanFull {
		return
	}
	s.updateField(pageIdx, panelIdx, func(p *domain.Panel) { p.Span = span })
}

// SetPanelStyle はパネルのスタイル上書きを丸ごと置き換えます。
// nil を渡すと上書きを解除し、グローバル設定の継承に戻ります。
func (s *Session) SetPanelStyle(pageIdx, panelIdx int, override *domain.TextOverride) {
	s.updateField(pageIdx, panelIdx, func(p *domain.Panel) { p.Style = override.Clone() })
}

// DeletePanel はパネルを削除し、後続のインデックスを詰めます。
// ページが空になるのを避けるため、残り1枚のときは no-op です。
func (s *Session) DeletePanel(pageIdx, panelIdx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pageIdx < 0 || pageIdx >= len(s.script.Pages) {
		return
	}
	page := s.script.Pages[pageIdx].Clone()
	if panelIdx < 0 || panelIdx >= len(page.Panels) {
		return
	}
	if len(page.Panels) <= 1 {
		return
	}
	page.Panels = append(page.Panels[:panelIdx], page.Panels[panelIdx+1:]...)
	s.replacePage(pageIdx, page)
}

// updateField は境界チェック付きの単一パネル更新です。
func (s *Session) updateField(pageIdx, panelIdx int, update func(p *domain.Panel)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.panelAt(pageIdx, panelIdx); !ok {
		return
	}
	s.mutatePanel(pageIdx, panelIdx, update)
}

// replacePage はロック保持中にページスライスを作り直して差し替えます。
func (s *Session) replacePage(pageIdx int, page domain.Page) {
	pages := make([]domain.Page, len(s.script.Pages))
	copy(pages, s.script.Pages)
	pages[pageIdx] = page
	s.script.Pages = pages
}
