package web

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/poku-e/MopacAssistant/internal/dataset"
	"github.com/poku-e/MopacAssistant/internal/export"
	"github.com/poku-e/MopacAssistant/internal/lookup"
)

// ---------- Pages ----------

type problemView struct {
	Dataset dataset.Kind `json:"dataset"`
	Path    string       `json:"path"`
	Reason  string       `json:"reason"`
	Error   string       `json:"error"`
}

func (s *Server) problemViews() []problemView {
	out := make([]problemView, 0, len(s.problems))
	for _, p := range s.problems {
		out = append(out, problemView{Dataset: p.Dataset, Path: p.Path, Reason: p.Reason(), Error: p.Err.Error()})
	}
	return out
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, homeTmpl, struct{ Problems []problemView }{s.problemViews()})
}

type cellView struct {
	Symbol       string
	Name         string
	AtomicNumber int
	Color        string
	GridRow      int // 1-based for CSS grid
	GridCol      int
	Highlighted  bool
}

type legendItem struct {
	Label string
	Color string
}

type elementsPage struct {
	Available bool
	Cols      int
	Cells     []cellView
	Legend    []legendItem
	Report    *lookup.Report
}

func (s *Server) handleElements(w http.ResponseWriter, r *http.Request) {
	data := elementsPage{}
	d := s.svc.Directory()
	if d != nil && s.svc.HasMethods() {
		data.Available = true
		symbol := strings.TrimSpace(r.URL.Query().Get("symbol"))
		if _, ok := d.Lookup(symbol); ok {
			report := s.svc.Describe(symbol)
			data.Report = &report
		}

		rows, cols := d.Bounds()
		data.Cols = cols
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				e, ok := d.At(row, col)
				if !ok {
					continue
				}
				data.Cells = append(data.Cells, cellView{
					Symbol:       e.Symbol,
					Name:         e.Name,
					AtomicNumber: e.AtomicNumber,
					Color:        e.Color(),
					GridRow:      row + 1,
					GridCol:      col + 1,
					Highlighted:  data.Report != nil && e.Symbol == symbol,
				})
			}
		}
		for _, g := range dataset.Groups() {
			data.Legend = append(data.Legend, legendItem{Label: g.Label(), Color: g.Color()})
		}
	}
	s.render(w, elementsTmpl, data)
}

type keywordItem struct {
	Name     string
	Selected bool
}

type keywordsPage struct {
	Keywords []keywordItem
	Current  string
	Lines    []string
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	keys := s.svc.Keywords()
	data := keywordsPage{}
	if len(keys) > 0 {
		data.Current = r.URL.Query().Get("keyword")
		if data.Current == "" {
			data.Current = keys[0]
		}
		data.Lines = s.svc.DescriptionLines(data.Current)
		for _, k := range keys {
			data.Keywords = append(data.Keywords, keywordItem{Name: k, Selected: k == data.Current})
		}
	}
	s.render(w, keywordsTmpl, data)
}

// ---------- API ----------

type datasetStatus struct {
	Ready   bool `json:"ready"`
	Records int  `json:"records"`
}

type statusResp struct {
	Datasets map[dataset.Kind]datasetStatus `json:"datasets"`
	Problems []problemView                  `json:"problems"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResp{
		Datasets: map[dataset.Kind]datasetStatus{
			dataset.KindElements: {Ready: s.svc.HasElements(), Records: len(s.svc.Elements())},
			dataset.KindMethods:  {Ready: s.svc.HasMethods(), Records: len(s.svc.Methods())},
			dataset.KindKeywords: {Ready: s.svc.HasKeywords(), Records: len(s.svc.Keywords())},
		},
		Problems: s.problemViews(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleElementList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Elements())
}

func (s *Server) handleElement(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")
	e, ok := s.svc.Element(symbol)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown element "+symbol)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// handleElementMethods answers for any symbol: an unsupported or unknown
// symbol is an empty list, not an error.
func (s *Server) handleElementMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Describe(r.PathValue("symbol")))
}

func (s *Server) handleMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Methods())
}

func (s *Server) handleKeywordList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Keywords())
}

type keywordResp struct {
	Keyword     string `json:"keyword"`
	Found       bool   `json:"found"`
	Description string `json:"description"`
}

func (s *Server) handleKeyword(w http.ResponseWriter, r *http.Request) {
	k := r.PathValue("keyword")
	desc := s.svc.Description(k)
	writeJSON(w, http.StatusOK, keywordResp{
		Keyword:     k,
		Found:       desc != lookup.DescriptionNotFound,
		Description: desc,
	})
}

func (s *Server) handleMatrixXLSX(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, s.svc.SupportMatrix()); err != nil {
		s.log.Errorw("matrix export failed", "format", export.FormatXLSX, "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}
	s.sendFile(w, "support-matrix.xlsx", xlsxContentType, buf.Bytes())
}

func (s *Server) handleMatrixCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, s.svc.SupportMatrix()); err != nil {
		s.log.Errorw("matrix export failed", "format", export.FormatCSV, "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}
	s.sendFile(w, "support-matrix.csv", "text/csv; charset=utf-8", buf.Bytes())
}

func (s *Server) sendFile(w http.ResponseWriter, name, contentType string, b []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if _, err := w.Write(b); err != nil {
		s.log.Debugw("error writing response", "error", err)
	}
}
