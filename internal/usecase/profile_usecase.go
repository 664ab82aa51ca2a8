package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"path/filepath"
	"strings"

	"career-match/internal/domain/ats"
	"career-match/internal/domain/user"
	"career-match/internal/infrastructure/resumetext"
	"career-match/internal/infrastructure/storage"
	"career-match/internal/repository"

	"github.com/google/uuid"
)

// MaxResumeBytes caps uploaded résumé files.
const MaxResumeBytes = 5 << 20

// popularRoles are offered in the role picker after the scored roles. They
// have no keyword list, so résumés analyzed against them score 0.
var popularRoles = []string{
	"Marketing Specialist",
	"Sales Representative",
	"Project Manager",
	"Business Analyst",
}

type SaveProfileInput struct {
	Role        string
	FileName    string
	ContentType string
	Data        []byte
}

type ProfileUsecase interface {
	SaveProfile(ctx context.Context, actor Actor, in SaveProfileInput) (user.Profile, error)
	UpdateResumeText(ctx context.Context, actor Actor, text string) (user.Profile, error)
	GetProfile(ctx context.Context, actor Actor) (user.Profile, error)
	ListRoles() []string
}

type Profile struct {
	profiles user.ProfileRepository
	analyses repository.AnalysisRepository
	store    storage.ObjectStore
	table    *ats.KeywordTable
	logger   *log.Logger
	now      Clock
}

// NewProfileUsecase accepts a nil store; raw files are then not kept.
func NewProfileUsecase(profiles user.ProfileRepository, analyses repository.AnalysisRepository, store storage.ObjectStore, table *ats.KeywordTable, logger *log.Logger, now Clock) *Profile {
	return &Profile{profiles: profiles, analyses: analyses, store: store, table: table, logger: logger, now: clockOrNow(now)}
}

func (u *Profile) SaveProfile(ctx context.Context, actor Actor, in SaveProfileInput) (user.Profile, error) {
	role := strings.TrimSpace(in.Role)
	if role == "" {
		return user.Profile{}, fmt.Errorf("%w: role is required", ErrInvalidInput)
	}
	if len(in.Data) == 0 {
		return user.Profile{}, fmt.Errorf("%w: resume file is required", ErrInvalidInput)
	}
	if len(in.Data) > MaxResumeBytes {
		return user.Profile{}, fmt.Errorf("%w: resume file exceeds %d bytes", ErrInvalidInput, MaxResumeBytes)
	}

	mime, err := resumetext.DetectType(in.ContentType, in.FileName)
	if err != nil {
		return user.Profile{}, fmt.Errorf("%w: use a PDF, DOCX or plain text file", ErrUnsupportedResume)
	}
	text, err := resumetext.Extract(mime, in.Data)
	if err != nil {
		logf(u.logger, "[Resume] extract failed user=%s type=%s err=%v", actor.UserID, mime, err)
		return user.Profile{}, fmt.Errorf("%w: %v", ErrUnsupportedResume, err)
	}

	name := filepath.Base(strings.TrimSpace(in.FileName))
	if name == "." || name == "/" {
		name = ""
	}

	objectKey := ""
	if u.store != nil {
		objectKey = path.Join("resumes", actor.UserID.String(), uuid.NewString()+strings.ToLower(filepath.Ext(name)))
		if err := u.store.Put(ctx, objectKey, mime, in.Data); err != nil {
			// The extracted text is what gets scored; losing the raw file is not fatal.
			logf(u.logger, "[Resume] upload failed user=%s key=%s err=%v", actor.UserID, objectKey, err)
			objectKey = ""
		}
	}

	p := user.Profile{
		UserID:          actor.UserID,
		TargetRole:      role,
		ResumeName:      name,
		ResumeText:      text,
		ResumeObjectKey: objectKey,
		UpdatedAt:       u.now().UTC(),
	}
	if err := u.profiles.Save(ctx, p); err != nil {
		return user.Profile{}, ErrInternal
	}
	if err := u.analyses.Delete(ctx, actor.UserID); err != nil {
		logf(u.logger, "[Resume] clear analysis failed user=%s err=%v", actor.UserID, err)
	}
	logf(u.logger, "[Resume] saved profile user=%s role=%q chars=%d", actor.UserID, role, len(text))
	return p, nil
}

func (u *Profile) UpdateResumeText(ctx context.Context, actor Actor, text string) (user.Profile, error) {
	if strings.TrimSpace(text) == "" {
		return user.Profile{}, fmt.Errorf("%w: resume text is required", ErrInvalidInput)
	}
	if err := u.profiles.UpdateResumeText(ctx, actor.UserID, text, u.now().UTC()); err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, ErrInternal
	}
	// The stored analysis scored the old text.
	if err := u.analyses.Delete(ctx, actor.UserID); err != nil {
		logf(u.logger, "[Resume] clear analysis failed user=%s err=%v", actor.UserID, err)
	}
	return u.GetProfile(ctx, actor)
}

func (u *Profile) GetProfile(ctx context.Context, actor Actor) (user.Profile, error) {
	p, err := u.profiles.Get(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profile) ListRoles() []string {
	scored := u.table.Roles()
	out := make([]string, 0, len(scored)+len(popularRoles))
	out = append(out, scored...)
	for _, r := range popularRoles {
		if !u.table.Has(r) {
			out = append(out, r)
		}
	}
	return out
}
