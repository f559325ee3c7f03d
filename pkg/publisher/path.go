package publisher

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveOutputPath はベースディレクトリとファイル名から最終的な
// 出力パスを生成し、ディレクトリがなければ作成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	if baseDir == "" {
		baseDir = "."
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return "", fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}
	return filepath.Join(baseDir, fileName), nil
}

// WriteFileAtomic は一時ファイル経由で書き込み、最後にリネームします。
// 途中失敗で壊れた成果物が残らないようにするためです。
func WriteFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("一時ファイルの書き込みに失敗しました: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("出力ファイルの確定に失敗しました: %w", err)
	}
	return nil
}
