package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

// JudgeService manages judge accounts, their event assignments and the
// invitation email carrying their generated credentials.
type JudgeService struct {
	judgeRepo repository.JudgeRepository
	userRepo  repository.UserRepository
	email     EmailService
}

// NewJudgeService creates a new judge service
func NewJudgeService(
	judgeRepo repository.JudgeRepository,
	userRepo repository.UserRepository,
	email EmailService,
) *JudgeService {
	return &JudgeService{
		judgeRepo: judgeRepo,
		userRepo:  userRepo,
		email:     email,
	}
}

// Create registers a judge: a judge-role user account with a generated
// password, the judge profile, and the event assignments. The plaintext
// password is returned once so the admin can hand it over when email
// delivery is disabled.
func (s *JudgeService) Create(name, email string, eventIDs []uint) (*entity.Judge, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: judge name and a valid email are required", apperrors.ErrValidation)
	}

	password, err := generatePassword()
	if err != nil {
		return nil, "", err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Username:     email,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleJudge,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	judge := &entity.Judge{
		UserID: user.ID,
		Name:   name,
		Email:  email,
	}
	if err := s.judgeRepo.Create(judge); err != nil {
		// Roll the account back by hand; the two inserts are not one
		// transaction and a dangling judge-less user would block the email
		// from being reused.
		if delErr := s.userRepo.Delete(user.ID); delErr != nil {
			log.Printf("[JudgeService] Orphaned user #%d after judge create failure: %v", user.ID, delErr)
		}
		return nil, "", err
	}

	if len(eventIDs) > 0 {
		if err := s.judgeRepo.ReplaceAssignments(judge.ID, eventIDs); err != nil {
			return nil, "", err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.email.SendJudgeInvite(ctx, email, name, email, password); err != nil {
		// Account exists either way; the admin still has the password.
		log.Printf("[JudgeService] Invite email to %s failed: %v", email, err)
	}

	return judge, password, nil
}

// AssignEvents overwrites a judge's event assignments
func (s *JudgeService) AssignEvents(judgeID uint, eventIDs []uint) error {
	if _, err := s.judgeRepo.GetByID(judgeID); err != nil {
		return fmt.Errorf("judge #%d: %w", judgeID, err)
	}
	return s.judgeRepo.ReplaceAssignments(judgeID, eventIDs)
}

// List returns all judges with their assignments
func (s *JudgeService) List() ([]entity.Judge, error) {
	return s.judgeRepo.List()
}

// GetByID returns a judge
func (s *JudgeService) GetByID(judgeID uint) (*entity.Judge, error) {
	return s.judgeRepo.GetByID(judgeID)
}

// Delete removes a judge profile and its user account
func (s *JudgeService) Delete(judgeID uint) error {
	judge, err := s.judgeRepo.GetByID(judgeID)
	if err != nil {
		return fmt.Errorf("judge #%d: %w", judgeID, err)
	}
	if err := s.judgeRepo.Delete(judgeID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(judge.UserID); err != nil {
		log.Printf("[JudgeService] Judge #%d deleted but user #%d remains: %v", judgeID, judge.UserID, err)
	}
	return nil
}

// AssignedEvents returns the events the judge behind userID may score
func (s *JudgeService) AssignedEvents(userID uint) ([]entity.Event, error) {
	judge, err := s.judgeRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: no judge profile for user #%d", apperrors.ErrForbidden, userID)
	}
	return s.judgeRepo.ListAssignedEvents(judge.ID)
}

// generatePassword returns a random 16-hex-char temporary password.
func generatePassword() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
