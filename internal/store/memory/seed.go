package memory

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ownersalliance/trustportal/internal/domain"
)

// SeedParams carries the bootstrap credentials. Passwords arrive in the
// clear and are hashed here; they come from configuration, never from
// source.
type SeedParams struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string

	StaffUsername string
	StaffEmail    string
	StaffPassword string

	BcryptCost int
}

// SeedBaseline populates a fresh store: the baseline administrator, the
// AI tool catalog and the staff knowledge base. The administrator's id
// becomes the default tribunal chairperson.
func (s *Store) SeedBaseline(ctx context.Context, p SeedParams) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(p.AdminPassword), p.BcryptCost)
	if err != nil {
		return fmt.Errorf("memory.SeedBaseline hash admin password: %w", err)
	}

	admin, err := s.CreateUser(ctx, domain.UserParams{
		Username:       ptr(p.AdminUsername),
		Email:          ptr(p.AdminEmail),
		PasswordHash:   ptr(string(hash)),
		Role:           ptr(domain.RoleAdmin),
		FirstName:      ptr("System"),
		LastName:       ptr("Administrator"),
		Department:     ptr("administration"),
		Specialization: ptr("management"),
		StaffID:        ptr("STAFF-001"),
	})
	if err != nil {
		return fmt.Errorf("memory.SeedBaseline create admin: %w", err)
	}

	s.mu.Lock()
	s.adminID = admin.ID
	s.mu.Unlock()

	if err := s.seedAiCatalog(ctx); err != nil {
		return err
	}
	if err := s.seedKnowledgeBase(ctx, admin.ID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "baseline seed complete", "admin_id", admin.ID)
	return nil
}

// EnsureDefaultAccounts creates the admin and staff accounts if their
// usernames are not yet taken. Safe to call on every start.
func (s *Store) EnsureDefaultAccounts(ctx context.Context, p SeedParams) error {
	if err := s.ensureAccount(ctx, accountSpec{
		username:       p.AdminUsername,
		email:          p.AdminEmail,
		password:       p.AdminPassword,
		role:           domain.RoleAdmin,
		firstName:      "System",
		lastName:       "Administrator",
		department:     "Administration",
		specialization: "System Management",
		staffID:        "ADMIN-001",
	}, p.BcryptCost); err != nil {
		return err
	}
	return s.ensureAccount(ctx, accountSpec{
		username:       p.StaffUsername,
		email:          p.StaffEmail,
		password:       p.StaffPassword,
		role:           domain.RoleStaff,
		firstName:      "John",
		lastName:       "Staff",
		department:     "Case Management",
		specialization: "Fraud Investigation",
		staffID:        "STAFF-002",
	}, p.BcryptCost)
}

type accountSpec struct {
	username       string
	email          string
	password       string
	role           domain.UserRole
	firstName      string
	lastName       string
	department     string
	specialization string
	staffID        string
}

func (s *Store) ensureAccount(ctx context.Context, spec accountSpec, cost int) error {
	if spec.username == "" {
		return nil
	}

	_, err := s.GetUserByUsername(ctx, spec.username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("memory.ensureAccount lookup %s: %w", spec.username, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(spec.password), cost)
	if err != nil {
		return fmt.Errorf("memory.ensureAccount hash password: %w", err)
	}

	_, err = s.CreateUser(ctx, domain.UserParams{
		Username:       ptr(spec.username),
		Email:          ptr(spec.email),
		PasswordHash:   ptr(string(hash)),
		Role:           ptr(spec.role),
		FirstName:      ptr(spec.firstName),
		LastName:       ptr(spec.lastName),
		Department:     ptr(spec.department),
		Specialization: ptr(spec.specialization),
		StaffID:        ptr(spec.staffID),
	})
	if err != nil {
		return fmt.Errorf("memory.ensureAccount create %s: %w", spec.username, err)
	}

	s.log.InfoContext(ctx, "default account created", "username", spec.username, "role", spec.role.String())
	return nil
}

// seedAiCatalog installs the built-in tool categories and the two
// starter tools.
func (s *Store) seedAiCatalog(ctx context.Context) error {
	type cat struct {
		name, description, icon, target string
		order                           int
	}
	cats := []cat{
		{"Deal Generator", "AI tools for generating business deals and contracts", "handshake", "all", 1},
		{"Code Checker", "AI tools for code analysis and review", "code", "developer", 2},
		{"Build Visualizer", "AI tools for visualizing builds and structures", "cube", "builder", 3},
		{"Server Management", "AI tools for server owners and administrators", "server", "server_owner", 4},
	}

	ids := make([]string, 0, len(cats))
	for _, c := range cats {
		created, err := s.CreateAiToolCategory(ctx, domain.AiToolCategoryParams{
			Name:        ptr(c.name),
			Description: ptr(c.description),
			Icon:        ptr(c.icon),
			TargetRole:  ptr(c.target),
			SortOrder:   ptr(c.order),
		})
		if err != nil {
			return fmt.Errorf("memory.seedAiCatalog category %s: %w", c.name, err)
		}
		ids = append(ids, created.ID)
	}

	_, err := s.CreateAiTool(ctx, domain.AiToolParams{
		CategoryID:   ptr(ids[0]),
		Name:         ptr("Quick Deal Generator"),
		Description:  ptr("Generate professional business deals quickly with AI assistance"),
		Instructions: ptr("You are a business deal generator. Create professional, legally sound business deals based on the provided details. Include all necessary terms, conditions, and clauses."),
		InputFields: map[string]any{
			"dealType":    map[string]any{"type": "select", "label": "Deal Type", "options": []string{"Partnership", "Service Agreement", "Purchase Contract", "Licensing"}},
			"parties":     map[string]any{"type": "text", "label": "Parties Involved", "required": true},
			"amount":      map[string]any{"type": "number", "label": "Deal Value ($)", "required": false},
			"duration":    map[string]any{"type": "text", "label": "Duration/Timeline", "required": false},
			"description": map[string]any{"type": "textarea", "label": "Deal Description", "required": true},
		},
		OutputFormat: ptr("markdown"),
	})
	if err != nil {
		return fmt.Errorf("memory.seedAiCatalog deal generator: %w", err)
	}

	_, err = s.CreateAiTool(ctx, domain.AiToolParams{
		CategoryID:   ptr(ids[1]),
		Name:         ptr("Code Security Analyzer"),
		Description:  ptr("Analyze code for security vulnerabilities and best practices"),
		Instructions: ptr("You are a code security expert. Analyze the provided code for security vulnerabilities, performance issues, and adherence to best practices. Provide detailed recommendations."),
		InputFields: map[string]any{
			"language":  map[string]any{"type": "select", "label": "Programming Language", "options": []string{"JavaScript", "Python", "Java", "C#", "PHP", "Go", "Rust"}},
			"code":      map[string]any{"type": "textarea", "label": "Code to Analyze", "required": true},
			"framework": map[string]any{"type": "text", "label": "Framework (optional)", "required": false},
		},
		OutputFormat: ptr("markdown"),
	})
	if err != nil {
		return fmt.Errorf("memory.seedAiCatalog code analyzer: %w", err)
	}
	return nil
}

// seedKnowledgeBase installs the staff guide category and the case
// moderation guidelines document.
func (s *Store) seedKnowledgeBase(ctx context.Context, authorID string) error {
	cat, err := s.CreateUtilityCategory(ctx, domain.UtilityCategoryParams{
		Name:        ptr("Staff Guides"),
		Description: ptr("Guidelines and procedures for staff members"),
		Icon:        ptr("book"),
		SortOrder:   ptr(1),
	})
	if err != nil {
		return fmt.Errorf("memory.seedKnowledgeBase category: %w", err)
	}

	_, err = s.CreateUtilityDocument(ctx, domain.UtilityDocumentParams{
		CategoryID:  ptr(cat.ID),
		Title:       ptr("Case Moderation Guidelines"),
		Content:     ptr(moderationGuideContent),
		Description: ptr("Complete guide for case moderation procedures"),
		Tags:        []string{"moderation", "guidelines", "staff", "procedures"},
		AuthorID:    ptr(authorID),
		AccessLevel: ptr("staff"),
	})
	if err != nil {
		return fmt.Errorf("memory.seedKnowledgeBase document: %w", err)
	}
	return nil
}

const moderationGuideContent = `# Case Moderation Guidelines

## Overview
This guide outlines the procedures and best practices for moderating cases.

## Key Principles
1. **Fairness**: All cases should be reviewed objectively
2. **Transparency**: Document all decisions clearly
3. **Timeliness**: Respond to cases within 24 hours
4. **Accuracy**: Verify all evidence before making decisions

## Process Steps
1. Initial case review
2. Evidence verification
3. Risk assessment
4. Decision making
5. Documentation

## Common Scenarios
- Financial scams: Require transaction evidence
- Identity theft: Verify identity documents
- Fake services: Check service delivery proof

## Escalation Procedures
Complex cases should be escalated to senior staff or tribunal.`
