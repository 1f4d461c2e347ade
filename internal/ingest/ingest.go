// Package ingest loads the question bank from CSV exports.
//
// Two row shapes are supported: open questions (question, topics, category)
// and code questions (question or formatted_title, topics, difficulty). A
// third file maps question_id to solution_text and is merged into already
// ingested code questions.
package ingest

import (
	"context"
	"crypto/md5"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yonatank/prepair/internal/store"
)

// Result summarizes one ingestion pass.
type Result struct {
	Ingested int
	Skipped  int
	Merged   int
}

// Loader writes parsed questions into the bank.
type Loader struct {
	questions store.QuestionRepo
}

// NewLoader creates a Loader backed by the given question repo.
func NewLoader(questions store.QuestionRepo) *Loader {
	return &Loader{questions: questions}
}

// IngestOpen loads open questions from r. Rows with empty question text
// are skipped, as are rows whose normalized text was already seen in
// this pass.
func (l *Loader) IngestOpen(ctx context.Context, r io.Reader) (Result, error) {
	return l.ingest(ctx, r, "open")
}

// IngestCode loads code questions from r. The question text falls back
// to formatted_title when the question column is empty.
func (l *Loader) IngestCode(ctx context.Context, r io.Reader) (Result, error) {
	return l.ingest(ctx, r, "code")
}

func (l *Loader) ingest(ctx context.Context, r io.Reader, qtype string) (Result, error) {
	var res Result

	rows, err := readRows(r)
	if err != nil {
		return res, fmt.Errorf("read %s questions csv: %w", qtype, err)
	}

	seen := make(map[string]bool)
	for i, row := range rows {
		text := strings.TrimSpace(row["question"])
		if text == "" && qtype == "code" {
			text = strings.TrimSpace(row["formatted_title"])
		}
		if text == "" {
			res.Skipped++
			continue
		}

		key := normalizeText(text)
		if seen[key] {
			res.Skipped++
			continue
		}
		seen[key] = true

		q := store.Question{
			ID:     questionID(qtype, row, i),
			Type:   qtype,
			Text:   text,
			Topics: NormalizeTopics(row["topics"]),
			Source: "csv",
		}
		if qtype == "code" {
			q.Difficulty = normalizeDifficulty(row["difficulty"])
			q.SolutionText = strings.TrimSpace(row["solution"])
		}
		if len(q.Topics) == 0 && row["category"] != "" {
			q.Topics = NormalizeTopics(row["category"])
		}

		if err := l.questions.Upsert(ctx, q); err != nil {
			return res, fmt.Errorf("upsert question %s: %w", q.ID, err)
		}
		res.Ingested++
	}
	return res, nil
}

// MergeSolutions reads a question_id,solution_text CSV and fills in
// solution text for code questions that do not have one yet.
func (l *Loader) MergeSolutions(ctx context.Context, r io.Reader) (Result, error) {
	var res Result

	rows, err := readRows(r)
	if err != nil {
		return res, fmt.Errorf("read solutions csv: %w", err)
	}

	for _, row := range rows {
		id := strings.TrimSpace(row["question_id"])
		solution := strings.TrimSpace(row["solution_text"])
		if id == "" || solution == "" {
			res.Skipped++
			continue
		}

		q, err := l.questions.Get(ctx, "code:"+id)
		if err != nil {
			return res, fmt.Errorf("load question code:%s: %w", id, err)
		}
		if q == nil || q.SolutionText != "" {
			res.Skipped++
			continue
		}

		q.SolutionText = solution
		if err := l.questions.Upsert(ctx, *q); err != nil {
			return res, fmt.Errorf("merge solution for %s: %w", q.ID, err)
		}
		res.Merged++
	}
	return res, nil
}

// readRows parses a CSV with a header row into one map per data row.
// Short rows are tolerated; missing columns read as "".
func readRows(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []map[string]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[strings.TrimSpace(col)] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// NormalizeTopics parses a topics cell into a clean list. The cell may
// hold a JSON array, a JSON string, a comma-separated list, or a single
// topic.
func NormalizeTopics(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var arr []any
	if err := json.Unmarshal([]byte(s), &arr); err == nil {
		var out []string
		for _, v := range arr {
			t := strings.TrimSpace(fmt.Sprint(v))
			if t != "" && t != "<nil>" {
				out = append(out, t)
			}
		}
		return out
	}
	var single string
	if err := json.Unmarshal([]byte(s), &single); err == nil {
		single = strings.TrimSpace(single)
		if single == "" {
			return nil
		}
		return []string{single}
	}

	if strings.Contains(s, ",") {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if t := strings.TrimSpace(part); t != "" {
				out = append(out, t)
			}
		}
		return out
	}
	return []string{s}
}

// questionID builds a stable "open:..." / "code:..." id for a row.
// An explicit question_id column wins; otherwise the id derives from an
// md5 of the question text, with the row index as a last resort.
func questionID(qtype string, row map[string]string, index int) string {
	if id := strings.TrimSpace(row["question_id"]); id != "" {
		return qtype + ":" + id
	}

	text := row["question"]
	if text == "" {
		text = row["formatted_title"]
	}
	if text == "" {
		text = row["title"]
	}
	if text != "" {
		sum := md5.Sum([]byte(text))
		return qtype + ":" + hex.EncodeToString(sum[:])[:12]
	}
	return fmt.Sprintf("%s:gen_%d", qtype, index)
}

// normalizeText collapses whitespace and case so near-identical rows
// dedupe to the same key.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// normalizeDifficulty maps csv difficulty values onto Easy/Medium/Hard.
func normalizeDifficulty(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
