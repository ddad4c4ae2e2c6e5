package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type cellKey struct {
	row, col int
}

// CellTypes maps cell coordinates to their OOXML type attribute. Cells
// without an entry are numeric.
type CellTypes map[cellKey]string

// Get returns the type attribute of the cell at the 1-based coordinates.
func (ct CellTypes) Get(row, col int) string {
	return ct[cellKey{row: row, col: col}]
}

// ScanCellTypes streams the worksheet XML once and records the type
// attribute of every non-numeric cell.
func ScanCellTypes(xlsxPath, sheetName string) (CellTypes, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheetPath, err := sheetPartPath(&r.Reader, sheetName)
	if err != nil {
		return nil, err
	}

	zf := findZipFile(&r.Reader, sheetPath)
	if zf == nil {
		return nil, fmt.Errorf("worksheet part %s missing for sheet %q", sheetPath, sheetName)
	}
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return parseCellTypes(rc)
}

// parseCellTypes reads <row>/<c> elements from worksheet XML. Rows and cells
// without an r attribute follow the previous one.
func parseCellTypes(src io.Reader) (CellTypes, error) {
	types := make(CellTypes)
	decoder := xml.NewDecoder(src)

	row, col := 0, 0
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "row":
			row++
			if v := attrValue(se, "r"); v != "" {
				if n, err := strconv.Atoi(v); err == nil {
					row = n
				}
			}
			col = 0
		case "c":
			col++
			if ref := attrValue(se, "r"); ref != "" {
				if c, rr, err := excelize.CellNameToCoordinates(ref); err == nil {
					col, row = c, rr
				}
			}
			if t := attrValue(se, "t"); t != "" && t != "n" {
				types[cellKey{row: row, col: col}] = t
			}
			if err := decoder.Skip(); err != nil {
				return nil, err
			}
		}
	}

	return types, nil
}

// sheetPartPath resolves the zip path of a worksheet through workbook.xml
// and its relationships.
func sheetPartPath(r *zip.Reader, sheetName string) (string, error) {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil {
		return "", err
	}
	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return "", err
	}

	sheetFiles := parseWorkbookRels(wbRelsXML, parseWorkbookSheets(workbookXML))
	for name, path := range sheetFiles {
		if strings.EqualFold(name, sheetName) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
}

func findZipFile(r *zip.Reader, name string) *zip.File {
	for _, f := range r.File {
		if strings.EqualFold(f.Name, name) {
			return f
		}
	}
	return nil
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	f := findZipFile(r, name)
	if f == nil {
		return nil, fmt.Errorf("zip entry %s not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	return baseDir + "/" + target
}

func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string) // rId -> sheet name
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attrValue(se, "name"), attrValue(se, "id")
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string) // sheet name -> file path
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			rID, target := attrValue(se, "Id"), attrValue(se, "Target")
			if sheetName, ok := sheetsInfo[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
				result[sheetName] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}
