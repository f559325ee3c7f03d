package editor

import (
	"testing"

	"github.com/shouni/go-comic-kit/pkg/director"
	"github.com/shouni/go-comic-kit/pkg/domain"
)

func testScript() domain.Script {
	raw := domain.Script{
		Title: "Test",
		Pages: []domain.Page{
			{
				ChapterTitle: "Chapter One",
				Panels: []domain.Panel{
					{Description: "d1", Caption: "c1"},
					{Description: "d2", Caption: "c2"},
					{Description: "d3", Caption: "c3"},
				},
			},
			{
				Panels: []domain.Panel{
					{Description: "d4", Caption: "c4"},
					{Description: "d5", Caption: "c5"},
				},
			},
		},
	}
	return domain.Normalize(raw, "test theme")
}

func newTestSession(refiner DescriptionRefiner, suggester PanelSuggester) *Session {
	return NewSession(testScript(), director.DefaultTextConfig("English"), "test style", refiner, suggester)
}

func TestSessionSnapshotIsolation(t *testing.T) {
	s := newTestSession(nil, nil)

	snap := s.Snapshot()
	snap.Pages[0].Panels[0].Caption = "mutated"
	snap.Pages = snap.Pages[:1]

	again := s.Snapshot()
	if again.Pages[0].Panels[0].Caption != "c1" {
		t.Error("スナップショットの変更がセッションへ伝播しています")
	}
	if len(again.Pages) != 2 {
		t.Error("スナップショットのスライス変更がセッションへ伝播しています")
	}
}

func TestSessionStatus(t *testing.T) {
	s := newTestSession(nil, nil)
	if s.Status() != StatusReview {
		t.Errorf("初期状態の期待値 REVIEW, 実際の値 %s", s.Status())
	}
	s.SetStatus(StatusGenerating)
	if s.Status() != StatusGenerating {
		t.Errorf("期待値 GENERATING_IMAGES, 実際の値 %s", s.Status())
	}
}

func TestSetGlobalStyleClamps(t *testing.T) {
	s := newTestSession(nil, nil)
	cfg := s.GlobalStyle()
	cfg.FontSize = 10.0
	s.SetGlobalStyle(cfg)
	if got := s.GlobalStyle().FontSize; got != domain.MaxFontScale {
		t.Errorf("期待値 %v, 実際の値 %v", domain.MaxFontScale, got)
	}
}

func TestUpdatePanelByID(t *testing.T) {
	s := newTestSession(nil, nil)

	t.Run("存在するIDに適用されること", func(t *testing.T) {
		if !s.UpdatePanel("p1-1", func(p *domain.Panel) { p.Caption = "updated" }) {
			t.Fatal("適用に失敗しました")
		}
		if got := s.Snapshot().Pages[0].Panels[1].Caption; got != "updated" {
			t.Errorf("期待値 'updated', 実際の値 '%s'", got)
		}
	})

	t.Run("存在しないIDでは false が返り無変更であること", func(t *testing.T) {
		before := s.Snapshot()
		if s.UpdatePanel("p9-9", func(p *domain.Panel) { p.Caption = "x" }) {
			t.Error("存在しないIDで true が返りました")
		}
		after := s.Snapshot()
		if before.PanelCount() != after.PanelCount() {
			t.Error("no-op のはずがスクリプトが変化しました")
		}
	})
}
