package director

import "github.com/shouni/go-comic-kit/pkg/domain"

// LayoutManager はページのカラム数とパネルの実効スパンの決定を担います。
type LayoutManager struct{}

func NewLayoutManager() *LayoutManager {
	return &LayoutManager{}
}

// Columns はレイアウトモードごとのグリッドカラム数を返します。
func (l *LayoutManager) Columns(layout domain.Layout) int {
	switch layout {
	case domain.LayoutVertical, domain.LayoutSplash:
		return 1
	default:
		return 2
	}
}

// Resizable は、そのレイアウトでパネルの Span 指定が意味を持つかを返します。
func (l *LayoutManager) Resizable(layout domain.Layout) bool {
	return layout == domain.LayoutGrid || layout == domain.LayoutDynamic
}

// SpanFor はパネルの実効スパンを決定します。
// GRID/DYNAMIC では明示的な Span を尊重します。DYNAMIC で Span 未指定の
// パネルには旧来のヒューリスティック（3枚ごと、および末尾の奇数パネルを
// 全幅にする）を適用します。これは検証済みの業務ルールではなく、
// 未指定時のデフォルト方針として維持しています。
// VERTICAL/SPLASH は1カラムのため常に全幅扱いです。
func (l *LayoutManager) SpanFor(layout domain.Layout, panel domain.Panel, index, count int) domain.Span {
	if !l.Resizable(layout) {
		return domain.SpanFull
	}
	if panel.Span != 0 {
		return panel.Span
	}
	if layout == domain.LayoutDynamic {
		if index%3 == 2 || (count%2 != 0 && index == count-1) {
			return domain.SpanFull
		}
	}
	return domain.SpanHalf
}
