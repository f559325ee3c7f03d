package domain

import "fmt"

const (
	// MinFontScale / MaxFontScale は FontSize 倍率の許容範囲です。
	MinFontScale = 0.8
	MaxFontScale = 2.0
)

// HasImage は、パネルが生成済み画像を保持しているかを返します。
// ImageRef は生成が一度でも成功した場合にのみ設定される、という不変条件の判定に使います。
func (p Panel) HasImage() bool {
	return p.Status == StatusComplete && p.ImageRef != ""
}

// Clone はパネルの独立したコピーを返します。Style の共有は行いません。
func (p Panel) Clone() Panel {
	out := p
	if p.Style != nil {
		out.Style = p.Style.Clone()
	}
	return out
}

// Clone はページの独立したコピーを返します。
func (pg Page) Clone() Page {
	out := pg
	out.Panels = make([]Panel, len(pg.Panels))
	for i, p := range pg.Panels {
		out.Panels[i] = p.Clone()
	}
	return out
}

// Clone はスクリプト全体のディープコピーを返します。
// 編集セッションのスナップショット取得で使用します。
func (s Script) Clone() Script {
	out := s
	out.Pages = make([]Page, len(s.Pages))
	for i, pg := range s.Pages {
		out.Pages[i] = pg.Clone()
	}
	return out
}

// Clone は上書きパッチの独立したコピーを返します。
func (o *TextOverride) Clone() *TextOverride {
	if o == nil {
		return nil
	}
	out := TextOverride{}
	if o.FontFamily != nil {
		v := *o.FontFamily
		out.FontFamily = &v
	}
	if o.TitleFontFamily != nil {
		v := *o.TitleFontFamily
		out.TitleFontFamily = &v
	}
	if o.FontSize != nil {
		v := *o.FontSize
		out.FontSize = &v
	}
	if o.Color != nil {
		v := *o.Color
		out.Color = &v
	}
	if o.BubbleStyle != nil {
		v := *o.BubbleStyle
		out.BubbleStyle = &v
	}
	return &out
}

// PanelCount はスクリプト内の総パネル数を返します。
func (s Script) PanelCount() int {
	n := 0
	for _, pg := range s.Pages {
		n += len(pg.Panels)
	}
	return n
}

// FindPanel はパネルIDから現在の位置 (pageIdx, panelIdx) を特定します。
// 非同期結果の適用時、インデックスではなくIDで照合するために使います。
func (s Script) FindPanel(id string) (pageIdx, panelIdx int, ok bool) {
	for i, pg := range s.Pages {
		for j, p := range pg.Panels {
			if p.ID == id {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// ClampFontScale は倍率を [MinFontScale, MaxFontScale] に収めます。
func ClampFontScale(v float64) float64 {
	if v < MinFontScale {
		return MinFontScale
	}
	if v > MaxFontScale {
		return MaxFontScale
	}
	return v
}

// PanelID はページ番号と序数から初期化時の安定IDを生成します。
func PanelID(pageNumber, ordinal int) string {
	return fmt.Sprintf("p%d-%d", pageNumber, ordinal)
}

// Normalize は外部コラボレーターから受け取った生スクリプトを初期化する
// 唯一の通過点です。各ページにデフォルトレイアウト（DYNAMIC）を与え、
// 各パネルへ安定ID・status=pending・span=1 を割り当てます。
// 以降の変更は編集エンジンと生成コントローラーのみが行います。
func Normalize(raw Script, theme string) Script {
	s := raw.Clone()
	s.Theme = theme
	for i := range s.Pages {
		pg := &s.Pages[i]
		if pg.PageNumber == 0 {
			pg.PageNumber = i + 1
		}
		pg.Layout = LayoutDynamic
		for j := range pg.Panels {
			p := &pg.Panels[j]
			p.ID = PanelID(pg.PageNumber, j)
			p.Status = StatusPending
			p.Span = SpanHalf
			p.ImageRef = ""
			p.Style = nil
		}
	}
	return s
}
