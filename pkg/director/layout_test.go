package director

import (
	"testing"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

func TestColumns(t *testing.T) {
	l := NewLayoutManager()
	cases := []struct {
		layout domain.Layout
		want   int
	}{
		{domain.LayoutGrid, 2},
		{domain.LayoutDynamic, 2},
		{domain.LayoutVertical, 1},
		{domain.LayoutSplash, 1},
	}
	for _, c := range cases {
		if got := l.Columns(c.layout); got != c.want {
			t.Errorf("%s: 期待値 %d, 実際の値 %d", c.layout, c.want, got)
		}
	}
}

func TestResizable(t *testing.T) {
	l := NewLayoutManager()
	if !l.Resizable(domain.LayoutGrid) || !l.Resizable(domain.LayoutDynamic) {
		t.Error("GRID/DYNAMIC はリサイズ可能であるべきです")
	}
	if l.Resizable(domain.LayoutVertical) || l.Resizable(domain.LayoutSplash) {
		t.Error("VERTICAL/SPLASH はリサイズ不可であるべきです")
	}
}

func TestSpanFor(t *testing.T) {
	l := NewLayoutManager()

	t.Run("1カラムレイアウトは常に全幅であること", func(t *testing.T) {
		p := domain.Panel{Span: domain.SpanHalf}
		if got := l.SpanFor(domain.LayoutVertical, p, 0, 4); got != domain.SpanFull {
			t.Errorf("期待値 2, 実際の値 %d", got)
		}
	})

	t.Run("明示的な Span が尊重されること", func(t *testing.T) {
		p := domain.Panel{Span: domain.SpanFull}
		if got := l.SpanFor(domain.LayoutDynamic, p, 0, 4); got != domain.SpanFull {
			t.Errorf("期待値 2, 実際の値 %d", got)
		}
		p.Span = domain.SpanHalf
		if got := l.SpanFor(domain.LayoutDynamic, p, 2, 4); got != domain.SpanHalf {
			t.Errorf("明示的な半幅が上書きされました: %d", got)
		}
	})

	t.Run("DYNAMIC 未指定時は3枚ごとに全幅になること", func(t *testing.T) {
		// 4パネル: 序数2だけが全幅
		wants := []domain.Span{domain.SpanHalf, domain.SpanHalf, domain.SpanFull, domain.SpanHalf}
		for i, want := range wants {
			if got := l.SpanFor(domain.LayoutDynamic, domain.Panel{}, i, 4); got != want {
				t.Errorf("index %d: 期待値 %d, 実際の値 %d", i, want, got)
			}
		}
	})

	t.Run("DYNAMIC 未指定時は末尾の奇数パネルが全幅になること", func(t *testing.T) {
		if got := l.SpanFor(domain.LayoutDynamic, domain.Panel{}, 4, 5); got != domain.SpanFull {
			t.Errorf("期待値 2, 実際の値 %d", got)
		}
	})

	t.Run("GRID 未指定時はヒューリスティックが適用されないこと", func(t *testing.T) {
		if got := l.SpanFor(domain.LayoutGrid, domain.Panel{}, 2, 4); got != domain.SpanHalf {
			t.Errorf("期待値 1, 実際の値 %d", got)
		}
	})
}
