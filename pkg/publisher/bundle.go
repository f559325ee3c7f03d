package publisher

import (
	"archive/zip"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shouni/go-comic-kit/pkg/domain"
)

const (
	bundleManifestName = "comic.json"
	bundleImageDir     = "images"
)

// DecodeImageRef は data URI 形式の画像参照を MIME タイプと
// バイナリデータに分解します。
func DecodeImageRef(ref string) (mimeType string, data []byte, err error) {
	if !strings.HasPrefix(ref, "data:") {
		return "", nil, fmt.Errorf("data URI ではありません")
	}
	rest := strings.TrimPrefix(ref, "data:")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, fmt.Errorf("base64 ペイロードが見つかりません")
	}
	mimeType = rest[:sep]
	data, err = base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("base64 のデコードに失敗しました: %w", err)
	}
	return mimeType, data, nil
}

// WriteBundle はリソースバンドル（comic.json + 生成済み画像）を
// ZIP形式で書き出します。画像を持たないパネルはマニフェスト上で
// ImageFileName が空になり、画像エントリも作られません。
func WriteBundle(w io.Writer, script domain.Script, artStyle, language string, date time.Time) error {
	pack := BuildResourcePack(script, artStyle, language, date)

	zw := zip.NewWriter(w)

	manifest, err := json.MarshalIndent(pack, "", "  ")
	if err != nil {
		return fmt.Errorf("マニフェストのエンコードに失敗しました: %w", err)
	}
	mw, err := zw.Create(bundleManifestName)
	if err != nil {
		return fmt.Errorf("マニフェストエントリの作成に失敗しました: %w", err)
	}
	if _, err := mw.Write(manifest); err != nil {
		return fmt.Errorf("マニフェストの書き込みに失敗しました: %w", err)
	}

	for _, page := range script.Pages {
		for j, panel := range page.Panels {
			if !panel.HasImage() {
				continue
			}
			mime, data, err := DecodeImageRef(panel.ImageRef)
			if err != nil {
				return fmt.Errorf("ページ %d パネル %d の画像参照が不正です: %w", page.PageNumber, j+1, err)
			}
			name := bundleImageDir + "/" + ImageFileName(page.PageNumber, j, mime)
			iw, err := zw.Create(name)
			if err != nil {
				return fmt.Errorf("画像エントリ %s の作成に失敗しました: %w", name, err)
			}
			if _, err := iw.Write(data); err != nil {
				return fmt.Errorf("画像 %s の書き込みに失敗しました: %w", name, err)
			}
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("ZIPのクローズに失敗しました: %w", err)
	}
	return nil
}
