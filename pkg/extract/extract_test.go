package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildDocx はテスト用の最小限のDOCXアーカイブを生成します。
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("zipエントリの作成に失敗しました: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("document.xml の書き込みに失敗しました: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zipのクローズに失敗しました: %v", err)
	}
	return buf.Bytes()
}

func TestReadFromPlainText(t *testing.T) {
	for _, name := range []string{"story.txt", "story.md", "noext"} {
		t.Run(name+" はそのまま本文になること", func(t *testing.T) {
			text, err := ReadFrom(strings.NewReader("昔々あるところに"), name)
			if err != nil {
				t.Fatalf("エラーが発生しました: %v", err)
			}
			if text != "昔々あるところに" {
				t.Errorf("期待値 '昔々あるところに', 実際の値 '%s'", text)
			}
		})
	}
}

func TestReadFromDocx(t *testing.T) {
	t.Run("段落テキストが抽出されること", func(t *testing.T) {
		doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`
		text, err := ReadFrom(bytes.NewReader(buildDocx(t, doc)), "input.docx")
		if err != nil {
			t.Fatalf("DOCXの抽出に失敗しました: %v", err)
		}
		if !strings.Contains(text, "First paragraph.") || !strings.Contains(text, "Second paragraph.") {
			t.Errorf("段落テキストが欠けています: %q", text)
		}
		if !strings.Contains(text, "First paragraph.\n") {
			t.Errorf("段落の区切りが改行になっていません: %q", text)
		}
	})

	t.Run("壊れたDOCXでUnsupportedOrCorruptFileErrorが返ること", func(t *testing.T) {
		_, err := ReadFrom(bytes.NewReader([]byte("not a zip archive")), "broken.docx")
		if err == nil {
			t.Fatal("エラーが返りませんでした")
		}
		var fileErr *UnsupportedOrCorruptFileError
		if !errors.As(err, &fileErr) {
			t.Fatalf("UnsupportedOrCorruptFileError ではありません: %T", err)
		}
		if fileErr.Name != "broken.docx" {
			t.Errorf("ファイル名の期待値 'broken.docx', 実際の値 '%s'", fileErr.Name)
		}
	})

	t.Run("document.xml を欠くアーカイブはエラーになること", func(t *testing.T) {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, _ := zw.Create("other.xml")
		w.Write([]byte("<x/>"))
		zw.Close()

		_, err := ReadFrom(bytes.NewReader(buf.Bytes()), "empty.docx")
		var fileErr *UnsupportedOrCorruptFileError
		if !errors.As(err, &fileErr) {
			t.Fatalf("UnsupportedOrCorruptFileError ではありません: %v", err)
		}
	})
}

func TestReadFromCorruptPDF(t *testing.T) {
	_, err := ReadFrom(bytes.NewReader([]byte("not a pdf")), "broken.pdf")
	if err == nil {
		t.Fatal("エラーが返りませんでした")
	}
	var fileErr *UnsupportedOrCorruptFileError
	if !errors.As(err, &fileErr) {
		t.Errorf("UnsupportedOrCorruptFileError ではありません: %T", err)
	}
}

func TestRead(t *testing.T) {
	t.Run("ローカルファイルを読み込めること", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "source.txt")
		if err := os.WriteFile(path, []byte("hello source"), 0o644); err != nil {
			t.Fatal(err)
		}
		text, err := Read(path)
		if err != nil {
			t.Fatalf("読み込みに失敗しました: %v", err)
		}
		if text != "hello source" {
			t.Errorf("期待値 'hello source', 実際の値 '%s'", text)
		}
	})

	t.Run("存在しないパスはエラーになること", func(t *testing.T) {
		if _, err := Read(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
			t.Error("エラーが返りませんでした")
		}
	})
}
