package editor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

// パネル追加時のプレースホルダー文言です。提案が得られなかった場合は
// 汎用の編集用テキストに差し替え、「解析中」のまま放置しません。
const (
	placeholderDescription = "AI is analyzing story context to generate a scene..."
	placeholderCaption     = "..."
	fallbackDescription    = "Describe your new scene here"
	fallbackCaption        = "Caption"

	defaultChapterContext = "Untitled Chapter"
)

// AddPanel はページ末尾へプレースホルダーパネルを即時追加し、
// 物語上の隣接パネル（同ページの直前パネルと次ページの先頭パネル）を
// 文脈としてAIへ内容提案を非同期に依頼します。提案結果は新パネルの
// IDで照合して適用されるため、その間にユーザーがパネルを削除していた
// 場合は破棄されます。追加されたパネルのIDを返します。
// ページが存在しない場合は no-op で空文字列を返します。
func (s *Session) AddPanel(ctx context.Context, pageIdx int) string {
	s.mu.Lock()
	if pageIdx < 0 || pageIdx >= len(s.script.Pages) {
		s.mu.Unlock()
		return ""
	}

	page := s.script.Pages[pageIdx].Clone()

	// 1. 文脈の決定（追加前の状態から）
	chapterContext := page.ChapterTitle
	if chapterContext == "" {
		chapterContext = defaultChapterContext
	}
	var prev, next *domain.PanelSeed
	if n := len(page.Panels); n > 0 {
		prev = &domain.PanelSeed{
			Description: page.Panels[n-1].Description,
			Caption:     page.Panels[n-1].Caption,
		}
	}
	if pageIdx+1 < len(s.script.Pages) {
		nextPage := s.script.Pages[pageIdx+1]
		if len(nextPage.Panels) > 0 {
			next = &domain.PanelSeed{
				Description: nextPage.Panels[0].Description,
				Caption:     nextPage.Panels[0].Caption,
			}
		}
	}

	// 2. プレースホルダーの即時追加
	// 時刻トークンを含むIDにより、初期化時に採番されたIDと衝突しません。
	id := fmt.Sprintf("p%d-t%d", page.PageNumber, time.Now().UnixNano())
	page.Panels = append(page.Panels, domain.Panel{
		ID:          id,
		Description: placeholderDescription,
		Caption:     placeholderCaption,
		Status:      domain.StatusPending,
		Span:        domain.SpanHalf,
	})
	s.replacePage(pageIdx, page)
	s.mu.Unlock()

	// 3. 内容提案の非同期依頼
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.resolveSuggestion(ctx, id, chapterContext, prev, next)
	}()

	return id
}

// resolveSuggestion は提案結果（または失敗時のフォールバック）を
// プレースホルダーへ適用します。ベストエフォートであり、失敗は
// ユーザーへのエラーとしては扱いません。
func (s *Session) resolveSuggestion(ctx context.Context, id, chapterContext string, prev, next *domain.PanelSeed) {
	seed := domain.PanelSeed{Description: fallbackDescription, Caption: fallbackCaption}
	if s.suggester != nil {
		suggested, err := s.suggester.Suggest(ctx, s.artStyle, chapterContext, prev, next)
		if err != nil {
			slog.Warn("パネル内容の提案に失敗したため汎用テキストへフォールバックします",
				"panel_id", id, "error", err)
		} else {
			seed = suggested
		}
	}
	applied := s.UpdatePanel(id, func(p *domain.Panel) {
		p.Description = seed.Description
		p.Caption = seed.Caption
	})
	if !applied {
		slog.Debug("提案の適用先パネルが既に存在しないため破棄します", "panel_id", id)
	}
}

// CommitCaption はキャプションの確定編集です。格納済みの値と同一なら
// 何もしません。変更がある場合はキャプションを更新し、描写プロンプトの
// 再計算を非同期に依頼します。パネルが生成済み画像を持つ場合、画像と
// 表示は維持されたまま（updating_prompt 中も含めて）描写だけが再計算
// 対象になります。再計算の成否にかかわらず、この操作自体が失敗する
// ことはありません。
func (s *Session) CommitCaption(ctx context.Context, pageIdx, panelIdx int, newCaption string) {
	s.mu.Lock()
	panel, ok := s.panelAt(pageIdx, panelIdx)
	if !ok || panel.Caption == newCaption {
		s.mu.Unlock()
		return
	}

	hasImage := panel.HasImage()
	id := panel.ID
	currentDescription := panel.Description

	s.mutatePanel(pageIdx, panelIdx, func(p *domain.Panel) {
		p.Caption = newCaption
		p.Status = domain.StatusUpdatingPrompt
	})
	s.mu.Unlock()

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.resolveRefinement(ctx, id, newCaption, currentDescription, hasImage)
	}()
}

// resolveRefinement は再計算された描写を適用し、状態を復帰させます。
// 失敗時は元の描写を保持したまま、同じフォールバック状態
// （画像があれば complete、なければ pending）へ戻します。
func (s *Session) resolveRefinement(ctx context.Context, id, caption, currentDescription string, hasImage bool) {
	restored := domain.StatusPending
	if hasImage {
		restored = domain.StatusComplete
	}

	revised := currentDescription
	if s.refiner != nil {
		d, err := s.refiner.Refine(ctx, caption, currentDescription, s.artStyle)
		if err != nil {
			slog.Warn("描写プロンプトの再計算に失敗したため元の描写を維持します",
				"panel_id", id, "error", err)
		} else {
			revised = d
		}
	}

	applied := s.UpdatePanel(id, func(p *domain.Panel) {
		p.Description = revised
		p.Status = restored
	})
	if !applied {
		slog.Debug("再計算結果の適用先パネルが既に存在しないため破棄します", "panel_id", id)
	}
}
