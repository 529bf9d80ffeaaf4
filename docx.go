package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyenthenguyen/docx"
)

// DocxTemplate adapts a .docx template to the TemplateDocument
// interface. The library replaces literal text across the whole document
// body, so the document is exposed as a single substitution cell; with
// week-scoped placeholder keys that preserves the per-cell semantics.
type DocxTemplate struct {
	file *docx.ReplaceDocx
	doc  *docx.Docx
}

func OpenDocxTemplate(path string) (*DocxTemplate, error) {
	file, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, fmt.Errorf("open template %s: %w", path, err)
	}
	return &DocxTemplate{file: file, doc: file.Editable()}, nil
}

func (d *DocxTemplate) Cells() []Cell {
	return []Cell{docxCell{doc: d.doc}}
}

// Save writes the filled document into outputFolder with a timestamped
// name and returns the full path.
func (d *DocxTemplate) Save(outputFolder string) (string, error) {
	if err := os.MkdirAll(outputFolder, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("Ausbildungsnachweis_%s.docx", time.Now().Format("20060102_150405"))
	path := filepath.Join(outputFolder, filename)
	if err := d.doc.WriteToFile(path); err != nil {
		return "", fmt.Errorf("save document: %w", err)
	}
	return path, nil
}

func (d *DocxTemplate) Close() error {
	return d.file.Close()
}

type docxCell struct {
	doc *docx.Docx
}

func (c docxCell) Replace(placeholder, value string) {
	if err := c.doc.Replace(placeholder, value, -1); err != nil {
		log.Printf("Error replacing %s: %v", placeholder, err)
	}
}

func (c docxCell) ReplaceAll(placeholders map[string]string) {
	for placeholder, value := range placeholders {
		c.Replace(placeholder, value)
	}
}

// BackupDocument copies the generated document into the backup folder.
// An empty folder disables the backup.
func BackupDocument(path, backupFolder string) (string, error) {
	if backupFolder == "" {
		return "", nil
	}
	if err := os.MkdirAll(backupFolder, 0755); err != nil {
		return "", err
	}
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst := filepath.Join(backupFolder, filepath.Base(path))
	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()
	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}
	return dst, nil
}
