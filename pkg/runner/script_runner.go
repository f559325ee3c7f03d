// Package runner は各コマンドの実行単位をまとめるオーケストレーション層です。
// コアのコラボレーターを受け取り、入出力と順序制御だけを担います。
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/extract"
	coregen "github.com/shouni/go-comic-kit/pkg/generator"
	"github.com/shouni/go-comic-kit/pkg/publisher"
)

// ScriptRunner は原稿ファイルから台本（正規化済みスクリプト）を生成します。
type ScriptRunner struct {
	cfg       *config.Config
	scriptGen coregen.ScriptGenerator
}

// NewScriptRunner は ScriptRunner の新しいインスタンスを生成して返します。
func NewScriptRunner(cfg *config.Config, sg coregen.ScriptGenerator) *ScriptRunner {
	return &ScriptRunner{
		cfg:       cfg,
		scriptGen: sg,
	}
}

// Run は原稿の読み込み、台本生成、正規化までを一気に行います。
// 生成に失敗した場合は部分的なスクリプトを返しません。
func (sr *ScriptRunner) Run(ctx context.Context) (domain.Script, error) {
	opts := sr.cfg.Options

	sourceText, err := extract.Read(opts.SourceFile)
	if err != nil {
		return domain.Script{}, err
	}

	slog.InfoContext(ctx, "台本生成を開始します",
		"source", opts.SourceFile,
		"chapters", opts.ChapterCount,
		"language", opts.Language)

	raw, err := sr.scriptGen.GenerateScript(ctx, sourceText, opts.Theme, opts.ChapterCount, opts.Language)
	if err != nil {
		return domain.Script{}, fmt.Errorf("台本の生成に失敗しました: %w", err)
	}

	// 正規化はここが唯一の入口。ID採番、状態初期化、レイアウト既定値を与えます。
	return domain.Normalize(raw, opts.Theme), nil
}

// RunAndSave は生成した台本をJSONとして出力ディレクトリへ保存し、
// 保存先パスを返します。
func (sr *ScriptRunner) RunAndSave(ctx context.Context) (string, error) {
	script, err := sr.Run(ctx)
	if err != nil {
		return "", err
	}
	return SaveScript(sr.cfg.Options.OutputDir, script)
}

// SaveScript はスクリプトをインデント付きJSONで保存します。
func SaveScript(outputDir string, script domain.Script) (string, error) {
	data, err := json.MarshalIndent(script, "", "  ")
	if err != nil {
		return "", fmt.Errorf("台本のエンコードに失敗しました: %w", err)
	}
	path, err := publisher.ResolveOutputPath(outputDir, config.DefaultScriptName)
	if err != nil {
		return "", err
	}
	if err := publisher.WriteFileAtomic(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// LoadScript は保存済みの台本JSONを読み込みます。
func LoadScript(path string) (domain.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Script{}, fmt.Errorf("台本JSON '%s' の読み込みに失敗しました: %w", path, err)
	}
	var script domain.Script
	if err := json.Unmarshal(data, &script); err != nil {
		return domain.Script{}, fmt.Errorf("台本JSON '%s' のデコードに失敗しました: %w", path, err)
	}
	return script, nil
}
