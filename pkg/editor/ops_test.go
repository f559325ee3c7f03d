package editor

import (
	"testing"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

func captions(s *Session, pageIdx int) []string {
	page := s.Snapshot().Pages[pageIdx]
	out := make([]string, len(page.Panels))
	for i, p := range page.Panels {
		out[i] = p.Caption
	}
	return out
}

func TestSetPageLayout(t *testing.T) {
	s := newTestSession(nil, nil)

	s.SetPageLayout(0, domain.LayoutVertical)
	if got := s.Snapshot().Pages[0].Layout; got != domain.LayoutVertical {
		t.Errorf("期待値 VERTICAL, 実際の値 %s", got)
	}

	t.Run("パネルの Span には触れないこと", func(t *testing.T) {
		s.ResizePanel(0, 0, domain.SpanFull)
		s.SetPageLayout(0, domain.LayoutGrid)
		if got := s.Snapshot().Pages[0].Panels[0].Span; got != domain.SpanFull {
			t.Errorf("レイアウト変更で Span が失われました: %d", got)
		}
	})

	t.Run("範囲外は no-op であること", func(t *testing.T) {
		s.SetPageLayout(99, domain.LayoutSplash)
	})
}

func TestMovePanel(t *testing.T) {
	s := newTestSession(nil, nil)

	t.Run("next で隣と入れ替わること", func(t *testing.T) {
		s.MovePanel(0, 0, MoveNext)
		got := captions(s, 0)
		want := []string{"c2", "c1", "c3"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("期待値 %v, 実際の値 %v", want, got)
			}
		}
	})

	t.Run("prev が逆操作になること", func(t *testing.T) {
		s.MovePanel(0, 1, MovePrev)
		got := captions(s, 0)
		want := []string{"c1", "c2", "c3"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("期待値 %v, 実際の値 %v", want, got)
			}
		}
	})

	t.Run("端からのはみ出しは no-op であること", func(t *testing.T) {
		s.MovePanel(0, 0, MovePrev)
		s.MovePanel(0, 2, MoveNext)
		got := captions(s, 0)
		want := []string{"c1", "c2", "c3"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("期待値 %v, 実際の値 %v", want, got)
			}
		}
	})

	t.Run("移動してもIDは変わらないこと", func(t *testing.T) {
		before := s.Snapshot().Pages[0].Panels[0].ID
		s.MovePanel(0, 0, MoveNext)
		after := s.Snapshot().Pages[0].Panels[1].ID
		if before != after {
			t.Errorf("移動でIDが変化しました: %s -> %s", before, after)
		}
	})
}

func TestResizePanel(t *testing.T) {
	s := newTestSession(nil, nil)

	s.ResizePanel(0, 0, domain.SpanFull)
	if got := s.Snapshot().Pages[0].Panels[0].Span; got != domain.SpanFull {
		t.Errorf("期待値 2, 実際の値 %d", got)
	}

	t.Run("同じ値の再適用は冪等であること", func(t *testing.T) {
		s.ResizePanel(0, 0, domain.SpanFull)
		if got := s.Snapshot().Pages[0].Panels[0].Span; got != domain.SpanFull {
			t.Errorf("期待値 2, 実際の値 %d", got)
		}
	})

	t.Run("不正な Span は拒否されること", func(t *testing.T) {
		s.ResizePanel(0, 0, domain.Span(3))
		s.ResizePanel(0, 0, domain.Span(0))
		if got := s.Snapshot().Pages[0].Panels[0].Span; got != domain.SpanFull {
			t.Errorf("不正値で Span が変化しました: %d", got)
		}
	})
}

func TestSetPanelStyle(t *testing.T) {
	s := newTestSession(nil, nil)
	size := 1.5
	color := "#00ff00"

	s.SetPanelStyle(0, 0, &domain.TextOverride{FontSize: &size})

	t.Run("部分更新ではなく丸ごと置換であること", func(t *testing.T) {
		s.SetPanelStyle(0, 0, &domain.TextOverride{Color: &color})
		style := s.Snapshot().Pages[0].Panels[0].Style
		if style == nil || style.Color == nil || *style.Color != color {
			t.Fatal("新しい上書きが反映されていません")
		}
		if style.FontSize != nil {
			t.Error("以前の上書きフィールドが残っています")
		}
	})

	t.Run("nil で上書きが解除されること", func(t *testing.T) {
		s.SetPanelStyle(0, 0, nil)
		if s.Snapshot().Pages[0].Panels[0].Style != nil {
			t.Error("nil を渡しても上書きが残っています")
		}
	})

	t.Run("呼び出し元の構造体と共有されないこと", func(t *testing.T) {
		v := 1.2
		override := &domain.TextOverride{FontSize: &v}
		s.SetPanelStyle(0, 0, override)
		v = 0.1
		if got := *s.Snapshot().Pages[0].Panels[0].Style.FontSize; got != 1.2 {
			t.Errorf("外部の変更が伝播しました: %v", got)
		}
	})
}

func TestDeletePanel(t *testing.T) {
	s := newTestSession(nil, nil)

	t.Run("削除で後続が詰められること", func(t *testing.T) {
		s.DeletePanel(0, 1)
		got := captions(s, 0)
		want := []string{"c1", "c3"}
		if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
			t.Fatalf("期待値 %v, 実際の値 %v", want, got)
		}
	})

	t.Run("残り1枚のときは no-op であること", func(t *testing.T) {
		s.DeletePanel(0, 0)
		if n := len(s.Snapshot().Pages[0].Panels); n != 1 {
			t.Fatalf("期待値 1, 実際の値 %d", n)
		}
		s.DeletePanel(0, 0)
		if n := len(s.Snapshot().Pages[0].Panels); n != 1 {
			t.Errorf("最後の1枚が削除されました: %d", n)
		}
	})

	t.Run("範囲外は no-op であること", func(t *testing.T) {
		before := s.Snapshot().PanelCount()
		s.DeletePanel(0, 99)
		s.DeletePanel(99, 0)
		if after := s.Snapshot().PanelCount(); after != before {
			t.Errorf("期待値 %d, 実際の値 %d", before, after)
		}
	})
}

func TestUpdateDescriptionAndCaption(t *testing.T) {
	s := newTestSession(nil, nil)

	s.UpdateDescription(1, 0, "new description")
	s.UpdateCaption(1, 0, "new caption")

	panel := s.Snapshot().Pages[1].Panels[0]
	if panel.Description != "new description" || panel.Caption != "new caption" {
		t.Errorf("直接更新が反映されていません: %+v", panel)
	}
	if panel.Status != domain.StatusPending {
		t.Errorf("直接更新で状態が変化しました: %s", panel.Status)
	}
}
