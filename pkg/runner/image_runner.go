package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/pkg/director"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/editor"
	coregen "github.com/shouni/go-comic-kit/pkg/generator"
)

// ImageRunner は台本の全パネルに対する画像の一括生成を実行します。
// 個々のパネルの失敗はそのパネルの status=error に留まり、
// バッチ全体は停止しません。
type ImageRunner struct {
	cfg       *config.Config
	imgGen    coregen.ImageGenerator
	refiner   editor.DescriptionRefiner
	suggester editor.PanelSuggester
}

// NewImageRunner は ImageRunner の新しいインスタンスを生成して返します。
func NewImageRunner(cfg *config.Config, ig coregen.ImageGenerator, rf editor.DescriptionRefiner, sg editor.PanelSuggester) *ImageRunner {
	return &ImageRunner{
		cfg:       cfg,
		imgGen:    ig,
		refiner:   rf,
		suggester: sg,
	}
}

// Run は編集セッションを立ち上げ、未生成パネルの一括生成を実行して
// 生成結果を反映したスクリプトを返します。
func (ir *ImageRunner) Run(ctx context.Context, script domain.Script) (domain.Script, error) {
	opts := ir.cfg.Options

	session := editor.NewSession(
		script,
		director.DefaultTextConfig(opts.Language),
		opts.ArtStyle,
		ir.refiner,
		ir.suggester,
	)

	batch := coregen.NewBatchRunner(ir.imgGen, coregen.BatchOptions{
		RateInterval: opts.RateInterval,
		Parallel:     opts.Parallel,
	})

	slog.InfoContext(ctx, "画像の一括生成を開始します",
		"panels", script.PanelCount(),
		"parallel", opts.Parallel,
		"rate_interval", opts.RateInterval)

	if err := batch.Run(ctx, session); err != nil {
		return domain.Script{}, fmt.Errorf("画像生成が中断されました: %w", err)
	}

	session.Wait()
	return session.Snapshot(), nil
}

// RunAndSave は画像付きスクリプトを生成して保存し、保存先パスを返します。
func (ir *ImageRunner) RunAndSave(ctx context.Context, script domain.Script) (string, error) {
	result, err := ir.Run(ctx, script)
	if err != nil {
		return "", err
	}
	return SaveScript(ir.cfg.Options.OutputDir, result)
}
