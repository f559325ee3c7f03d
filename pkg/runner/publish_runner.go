package runner

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/pkg/director"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/publisher"
)

// PublishResult は成果物の保存先パスです。
type PublishResult struct {
	PDFPath    string
	BundlePath string
}

// PublishRunner は完成した台本からPDFとリソースバンドルを書き出します。
type PublishRunner struct {
	cfg *config.Config
}

// NewPublishRunner は PublishRunner の新しいインスタンスを生成して返します。
func NewPublishRunner(cfg *config.Config) *PublishRunner {
	return &PublishRunner{cfg: cfg}
}

// Run はPDFとZIPバンドルの両方を出力ディレクトリへ保存します。
// 画像が未生成のパネルもプレースホルダーとして成果物に含まれます。
func (pr *PublishRunner) Run(ctx context.Context, script domain.Script) (PublishResult, error) {
	now := time.Now()

	pdfPath, err := pr.writePDF(script)
	if err != nil {
		return PublishResult{}, err
	}
	slog.InfoContext(ctx, "PDFを書き出しました", "path", pdfPath)

	bundlePath, err := pr.writeBundle(script, now)
	if err != nil {
		return PublishResult{}, err
	}
	slog.InfoContext(ctx, "リソースバンドルを書き出しました", "path", bundlePath)

	return PublishResult{PDFPath: pdfPath, BundlePath: bundlePath}, nil
}

func (pr *PublishRunner) writePDF(script domain.Script) (string, error) {
	opts := pr.cfg.Options

	var buf bytes.Buffer
	exporter := publisher.NewPDFExporter(director.DefaultTextConfig(opts.Language))
	if err := exporter.Export(&buf, script); err != nil {
		return "", err
	}

	path, err := publisher.ResolveOutputPath(opts.OutputDir, config.DefaultPDFName)
	if err != nil {
		return "", err
	}
	if err := publisher.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

func (pr *PublishRunner) writeBundle(script domain.Script, now time.Time) (string, error) {
	opts := pr.cfg.Options

	var buf bytes.Buffer
	if err := publisher.WriteBundle(&buf, script, opts.ArtStyle, opts.Language, now); err != nil {
		return "", err
	}

	path, err := publisher.ResolveOutputPath(opts.OutputDir, config.DefaultBundleName)
	if err != nil {
		return "", err
	}
	if err := publisher.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}
