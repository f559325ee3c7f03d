package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/editor"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultRateInterval は外部サービスへの負荷を抑えるための
// リクエスト間隔のデフォルト値です。
const DefaultRateInterval = 10 * time.Second

// BatchOptions はバッチ実行の挙動を制御します。
type BatchOptions struct {
	// RateInterval はリクエストのペーシング間隔です。0 ならデフォルトを使用します。
	RateInterval time.Duration
	// Parallel は同時に実行する生成リクエストの上限です。
	// 1 以下なら参照実装どおり文書順の逐次処理になります。
	Parallel int
}

// BatchRunner は生成ライフサイクルコントローラーです。スクリプト内の
// 未完了パネルを文書順に走査して画像生成を依頼し、結果を
// パネルごとに独立して記録します。1枚の失敗が他のパネルを
// 道連れにすることはありません。
type BatchRunner struct {
	imgGen   ImageGenerator
	limiter  *rate.Limiter
	parallel int
}

// NewBatchRunner は BatchRunner を初期化します。
func NewBatchRunner(imgGen ImageGenerator, opts BatchOptions) *BatchRunner {
	interval := opts.RateInterval
	if interval <= 0 {
		interval = DefaultRateInterval
	}
	parallel := opts.Parallel
	if parallel < 1 {
		parallel = 1
	}
	return &BatchRunner{
		imgGen:   imgGen,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		parallel: parallel,
	}
}

// target はバッチ開始時点で発行が確定した1件の生成要求です。
// 適用はIDで照合するため、実行中の編集でインデックスが変わっても安全です。
type target struct {
	panelID     string
	description string
	pageNumber  int
	ordinal     int
}

// Run はセッション内の全未完了パネルについて画像生成を実行します。
// 対象は status が complete かつ画像保持済みのものを除く全パネルで、
// ページ順・パネル順に発行されます。個々の失敗は該当パネルの
// status=error として記録され、バッチは全パネルが終端状態に達した
// 時点で完了します。完了後のセッション状態は、失敗の有無にかかわらず
// COMPLETE です（失敗パネルは可視のままユーザーが再試行できます）。
// エラーを返すのはコンテキストの取り消し時のみです。
func (r *BatchRunner) Run(ctx context.Context, session *editor.Session) error {
	session.SetStatus(editor.StatusGenerating)

	targets := r.collectTargets(session.Snapshot())
	slog.Info("パネル画像の一括生成を開始します",
		"targets", len(targets), "parallel", r.parallel)

	var err error
	if r.parallel > 1 {
		err = r.runParallel(ctx, session, targets)
	} else {
		err = r.runSequential(ctx, session, targets)
	}
	if err != nil {
		return err
	}

	session.SetStatus(editor.StatusComplete)
	slog.Info("パネル画像の一括生成が完了しました")
	return nil
}

// collectTargets は文書順（ページ→パネル）に生成対象を抽出します。
func (r *BatchRunner) collectTargets(script domain.Script) []target {
	var targets []target
	for _, page := range script.Pages {
		for j, panel := range page.Panels {
			if panel.HasImage() {
				continue
			}
			targets = append(targets, target{
				panelID:     panel.ID,
				description: panel.Description,
				pageNumber:  page.PageNumber,
				ordinal:     j,
			})
		}
	}
	return targets
}

// runSequential は参照実装どおり、発行順 = 適用順の逐次処理です。
func (r *BatchRunner) runSequential(ctx context.Context, session *editor.Session, targets []target) error {
	for _, t := range targets {
		if err := r.generateOne(ctx, session, t); err != nil {
			return err
		}
	}
	return nil
}

// runParallel は同時実行数を parallel に制限した並列処理です。
// パネルごとの最終状態は逐次処理と同一に保たれます。
func (r *BatchRunner) runParallel(ctx context.Context, session *editor.Session, targets []target) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.parallel)
	for _, t := range targets {
		t := t
		eg.Go(func() error {
			return r.generateOne(egCtx, session, t)
		})
	}
	return eg.Wait()
}

// generateOne は1パネル分の generating → complete/error 遷移を実行します。
// 戻り値のエラーはコンテキスト取り消しのみで、生成失敗はパネル状態として
// 記録されます。
func (r *BatchRunner) generateOne(ctx context.Context, session *editor.Session, t target) error {
	session.UpdatePanel(t.panelID, func(p *domain.Panel) {
		p.Status = domain.StatusGenerating
	})

	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("リミッター待機中にエラーが発生しました: %w", err)
	}

	logger := slog.With("page", t.pageNumber, "panel", t.ordinal+1, "panel_id", t.panelID)
	started := time.Now()

	imageRef, err := r.imgGen.GenerateImage(ctx, t.description, session.ArtStyle())
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Error("パネル画像の生成に失敗しました", "error",
			&ImageGenerationError{PanelID: t.panelID, Err: err})
		session.UpdatePanel(t.panelID, func(p *domain.Panel) {
			p.Status = domain.StatusError
		})
		return nil
	}

	logger.Info("パネル画像の生成が完了しました",
		"duration", time.Since(started).Round(time.Millisecond))
	session.UpdatePanel(t.panelID, func(p *domain.Panel) {
		p.Status = domain.StatusComplete
		p.ImageRef = imageRef
	})
	return nil
}

// Regenerate は単一パネルの明示的な再生成です。現在の描写プロンプトと
// セッションの画風で画像生成を依頼し、complete+画像参照 または error を
// 記録します。他パネルの状態には一切触れません。既存の画像は成功するまで
// 置き換えられません。対象が存在しない場合は no-op です。
func (r *BatchRunner) Regenerate(ctx context.Context, session *editor.Session, pageIdx, panelIdx int) {
	script := session.Snapshot()
	if pageIdx < 0 || pageIdx >= len(script.Pages) {
		return
	}
	page := script.Pages[pageIdx]
	if panelIdx < 0 || panelIdx >= len(page.Panels) {
		return
	}
	panel := page.Panels[panelIdx]

	t := target{
		panelID:     panel.ID,
		description: panel.Description,
		pageNumber:  page.PageNumber,
		ordinal:     panelIdx,
	}
	_ = r.generateOne(ctx, session, t)
}
