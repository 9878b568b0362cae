package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"

	"ai-onboarding-be/internal/model"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sampleDocument struct {
	Title     string
	OwnerRole string
	Category  string
	Tags      []string
	Content   string
}

// SeedDocuments inserts a small starter corpus so the assistant has material
// to answer from on a fresh install. Each document lands as version 1 of a
// new logical document; re-running the seeder skips titles that exist.
func SeedDocuments(db *gorm.DB) {
	docs := []sampleDocument{
		{
			Title:     "Employee Onboarding Handbook",
			OwnerRole: "analyst",
			Category:  "onboarding",
			Tags:      []string{"onboarding", "handbook"},
			Content: "Welcome to the ministry. Your first week covers account setup, security briefing and " +
				"an introduction to the document workspace. Request your access badge from the facilities " +
				"desk on the ground floor. IT accounts are provisioned within two business days; contact " +
				"the service desk if your credentials have not arrived by then. All staff complete the " +
				"information security training during the first month.",
		},
		{
			Title:     "Leave and Attendance Policy",
			OwnerRole: "analyst",
			Category:  "policy",
			Tags:      []string{"policy", "leave"},
			Content: "Annual leave is 21 working days plus public holidays. Leave requests go through the " +
				"HR portal at least five working days in advance. Sick leave requires a medical certificate " +
				"from the third consecutive day. Unused leave days carry over up to a maximum of five days " +
				"into the next calendar year.",
		},
		{
			Title:     "Executive Briefing Schedule",
			OwnerRole: "minister",
			Category:  "operations",
			Tags:      []string{"executive", "schedule"},
			Content: "Weekly executive briefings take place on Monday mornings. Quarterly strategy reviews " +
				"include the deputy ministers and department heads. Briefing papers are distributed through " +
				"the executive channel two days before each session and remain restricted to executive and " +
				"administrative staff.",
		},
		{
			Title:     "System Administration Runbook",
			OwnerRole: "admin",
			Category:  "operations",
			Tags:      []string{"admin", "runbook"},
			Content: "Administrative access to production systems requires hardware token authentication. " +
				"Database credentials rotate every 90 days. Incident escalation starts with the on-call " +
				"administrator and moves to the infrastructure lead after 30 minutes without acknowledgement. " +
				"This runbook is restricted to administrators.",
		},
	}

	for _, d := range docs {
		var existing model.Document
		if err := db.Where("title = ?", d.Title).First(&existing).Error; err == nil {
			color.Yellow("Document '%s' already exists, skipping...", d.Title)
			continue
		}

		sum := sha256.Sum256([]byte(d.Content))
		tags, _ := json.Marshal(d.Tags)

		doc := model.Document{
			DocumentId: uuid.New(),
			Version:    1,
			Title:      d.Title,
			OwnerRole:  d.OwnerRole,
			Content:    d.Content,
			Category:   d.Category,
			Tags:       tags,
			Checksum:   hex.EncodeToString(sum[:]),
		}
		if err := db.Create(&doc).Error; err != nil {
			log.Printf("Error creating document '%s': %v", d.Title, err)
		} else {
			color.Green("Created document: %s (%s)", d.Title, d.OwnerRole)
		}
	}
}
