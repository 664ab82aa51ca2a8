package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-match/internal/database"
	"career-match/internal/domain/ats"

	"github.com/google/uuid"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisRecord is the last analysis of a seeker's résumé plus the
// suggestions that have not been applied yet.
type AnalysisRecord struct {
	UserID      uuid.UUID
	Result      ats.AnalysisResult
	Suggestions ats.SuggestionList
	UpdatedAt   time.Time
}

type AnalysisRepository interface {
	Save(ctx context.Context, rec AnalysisRecord) error
	Get(ctx context.Context, userID uuid.UUID) (AnalysisRecord, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type PostgresAnalysisRepository struct {
	db database.Querier
}

func NewPostgresAnalysisRepository(db database.Querier) *PostgresAnalysisRepository {
	return &PostgresAnalysisRepository{db: db}
}

type storedSuggestion struct {
	Key      string   `json:"key"`
	Text     string   `json:"text"`
	Keywords []string `json:"keywords,omitempty"`
}

func encodeSuggestions(list ats.SuggestionList) ([]byte, error) {
	out := make([]storedSuggestion, 0, len(list))
	for _, s := range list {
		out = append(out, storedSuggestion{Key: s.Key.String(), Text: s.Text, Keywords: s.Keywords})
	}
	return json.Marshal(out)
}

func decodeSuggestions(b []byte) (ats.SuggestionList, error) {
	var stored []storedSuggestion
	if err := json.Unmarshal(b, &stored); err != nil {
		return nil, err
	}
	out := make(ats.SuggestionList, 0, len(stored))
	for _, s := range stored {
		key, ok := ats.ParseSuggestionKey(s.Key)
		if !ok {
			return nil, fmt.Errorf("invalid stored suggestion key %q", s.Key)
		}
		out = append(out, ats.Suggestion{Key: key, Kind: key.Kind, Text: s.Text, Keywords: s.Keywords})
	}
	return out, nil
}

func (r *PostgresAnalysisRepository) Save(ctx context.Context, rec AnalysisRecord) error {
	suggestions, err := encodeSuggestions(rec.Suggestions)
	if err != nil {
		return fmt.Errorf("encode suggestions: %w", err)
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO resume_analyses
			(user_id, role, score, matched_keywords, missing_keywords, suggestions, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
			role = EXCLUDED.role,
			score = EXCLUDED.score,
			matched_keywords = EXCLUDED.matched_keywords,
			missing_keywords = EXCLUDED.missing_keywords,
			suggestions = EXCLUDED.suggestions,
			updated_at = EXCLUDED.updated_at`,
		rec.UserID, rec.Result.Role, rec.Result.Score,
		nonNil(rec.Result.MatchedKeywords), nonNil(rec.Result.MissingKeywords),
		suggestions, rec.UpdatedAt,
	)
	return err
}

func (r *PostgresAnalysisRepository) Get(ctx context.Context, userID uuid.UUID) (AnalysisRecord, error) {
	rec := AnalysisRecord{UserID: userID}
	var raw []byte
	err := r.db.QueryRow(ctx,
		`SELECT role, score, matched_keywords, missing_keywords, suggestions, updated_at
		 FROM resume_analyses WHERE user_id = $1`,
		userID,
	).Scan(&rec.Result.Role, &rec.Result.Score, &rec.Result.MatchedKeywords, &rec.Result.MissingKeywords, &raw, &rec.UpdatedAt)
	if errors.Is(err, database.ErrNoRows) {
		return AnalysisRecord{}, ErrAnalysisNotFound
	}
	if err != nil {
		return AnalysisRecord{}, err
	}

	rec.Suggestions, err = decodeSuggestions(raw)
	if err != nil {
		return AnalysisRecord{}, fmt.Errorf("decode suggestions: %w", err)
	}
	rec.Result.Status = ats.StatusFor(rec.Result.Score)
	return rec, nil
}

func (r *PostgresAnalysisRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM resume_analyses WHERE user_id = $1`, userID)
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
