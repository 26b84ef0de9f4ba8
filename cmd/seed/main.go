package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mehedihb/kagojghor-backend/config"
	"github.com/mehedihb/kagojghor-backend/internal/app/model"
	"github.com/mehedihb/kagojghor-backend/internal/app/repository"
	"github.com/mehedihb/kagojghor-backend/internal/db"
	"github.com/mehedihb/kagojghor-backend/pkg/util"
	"github.com/xuri/excelize/v2"
)

// প্রতিষ্ঠানের তালিকা (BANBEIS এক্সপোর্ট) XLSX থেকে ডাটাবেইজে তোলে।
// কলাম: বাংলা নাম | ইংরেজি নাম | EIIN | ঠিকানা | প্রধান শিক্ষক | প্রতিষ্ঠার সাল
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	institutionRepo := repository.NewInstitutionRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	institutions, err := readInstitutionsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total institutions to import: %d\n", len(institutions))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := institutionRepo.BulkCreate(institutions, batchSize); err != nil {
		log.Fatal("Failed to bulk create institutions:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total institutions imported: %d\n", len(institutions))
}

func readInstitutionsFromXLSX(filePath string) ([]model.Institution, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var institutions []model.Institution
	seenEIIN := make(map[string]bool) // EIIN দিয়ে ডুপ্লিকেট বাদ
	skippedCount := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 3 {
			skippedCount++
			continue
		}

		nameBn := strings.TrimSpace(row[0])
		nameEn := strings.TrimSpace(cell(row, 1))
		eiin := strings.TrimSpace(cell(row, 2))
		address := strings.TrimSpace(cell(row, 3))
		headTeacher := strings.TrimSpace(cell(row, 4))
		yearStr := strings.TrimSpace(cell(row, 5))

		if nameBn == "" || eiin == "" {
			skippedCount++
			continue
		}

		if seenEIIN[eiin] {
			skippedCount++
			continue
		}
		seenEIIN[eiin] = true

		// সাল বাংলা সংখ্যায় থাকতে পারে
		establishedYear, _ := strconv.Atoi(util.ToLatinDigits(yearStr))

		institutions = append(institutions, model.Institution{
			NameBn:          nameBn,
			NameEn:          nameEn,
			EIIN:            util.ToLatinDigits(eiin),
			Address:         address,
			HeadTeacherName: headTeacher,
			EstablishedYear: establishedYear,
		})

		if len(institutions)%500 == 0 {
			fmt.Printf("Processed %d institutions...\n", len(institutions))
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid institutions: %d\n", len(institutions))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)

	return institutions, nil
}

// cell reads a column that excelize may omit when trailing cells are empty.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
