// Package extract は、アップロードされた原稿ファイル（プレーンテキスト、
// DOCX、PDF）からテキストを取り出すステートレスなユーティリティです。
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// UnsupportedOrCorruptFileError はファイル形式の解析失敗です。
// リクエスト全体に対して致命的で、部分的な結果は返されません。
type UnsupportedOrCorruptFileError struct {
	Name string
	Err  error
}

func (e *UnsupportedOrCorruptFileError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Name, e.Err)
}

func (e *UnsupportedOrCorruptFileError) Unwrap() error { return e.Err }

// Read はパスのファイルを拡張子に応じて解析し、原稿テキストを返します。
// .docx と .pdf 以外はプレーンテキストとして読み込みます。
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("入力ファイルの読み込みに失敗しました: %w", err)
	}
	return ReadFrom(bytes.NewReader(data), filepath.Base(path))
}

// ReadFrom はファイル名の拡張子で形式を判別してテキストを抽出します。
func ReadFrom(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("入力の読み込みに失敗しました: %w", err)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".docx":
		text, err := readDocx(data)
		if err != nil {
			return "", &UnsupportedOrCorruptFileError{Name: name, Err: err}
		}
		return text, nil
	case ".pdf":
		text, err := readPDF(data)
		if err != nil {
			return "", &UnsupportedOrCorruptFileError{Name: name, Err: err}
		}
		return text, nil
	default:
		// txt, md などはそのまま本文として扱います。
		return string(data), nil
	}
}

// readDocx は DOCX（zip 内の word/document.xml）から段落テキストを抽出します。
func readDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("zipアーカイブの展開に失敗しました: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("word/document.xml が見つかりません")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("document.xml のオープンに失敗しました: %w", err)
	}
	defer rc.Close()

	return decodeDocumentXML(rc)
}

// decodeDocumentXML は <w:p> 段落内の <w:t> テキストノードを連結します。
func decodeDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var sb strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("XMLの解析に失敗しました: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}

// readPDF は各ページのプレーンテキストを抽出して連結します。
func readPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("PDFの解析に失敗しました: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("ページ %d のテキスト抽出に失敗しました: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
