package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// MenuItemDraft is a proposed menu item extracted from a photographed menu. The
// user reviews drafts in the authoring screen before anything is persisted.
type MenuItemDraft struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CategoryName string  `json:"category_name"`
}

// TextDetector is the narrow interface over the OCR backend so the draft parsing
// stays testable without AWS.
type TextDetector interface {
	DetectLines(base64Img string) ([]string, error)
}

type ExtractionService struct {
	detector TextDetector
}

func NewExtractionService(d TextDetector) *ExtractionService {
	return &ExtractionService{detector: d}
}

// ExtractMenuItems runs OCR over a menu photo and parses the detected lines into
// item drafts.
func (s *ExtractionService) ExtractMenuItems(base64Img string) ([]MenuItemDraft, error) {
	lines, err := s.detector.DetectLines(base64Img)
	if err != nil {
		return nil, err
	}
	return ParseMenuLines(lines), nil
}

var priceTail = regexp.MustCompile(`[\$€£]?\s*(\d+(?:[.,]\d{1,2})?)\s*$`)

// ParseMenuLines turns raw OCR lines into drafts. A line ending in a price
// becomes an item; an upper-case line with no price becomes the category for the
// items that follow it; anything else right after an item is taken as its
// description.
func ParseMenuLines(lines []string) []MenuItemDraft {
	drafts := []MenuItemDraft{}
	category := ""

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		m := priceTail.FindStringSubmatch(line)
		if m != nil {
			name := strings.TrimSpace(strings.TrimSuffix(line, m[0]))
			name = strings.TrimRight(name, ".… ")
			if name == "" {
				continue
			}
			price, _ := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
			drafts = append(drafts, MenuItemDraft{
				Name:         name,
				Price:        price,
				CategoryName: category,
			})
			continue
		}

		if line == strings.ToUpper(line) && len(line) > 2 {
			category = titleCase(line)
			continue
		}

		// free text under the last item reads as its description
		if len(drafts) > 0 && drafts[len(drafts)-1].Description == "" {
			drafts[len(drafts)-1].Description = line
		}
	}
	return drafts
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ---------- Rekognition-backed detector ----------

type RekognitionDetector struct {
	client *rekognition.Client
}

func NewRekognitionDetector() (*RekognitionDetector, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionDetector{client: rekognition.NewFromConfig(cfg)}, nil
}

// DetectLines returns the LINE-level text detections for a base64 data-URI image,
// top to bottom as Rekognition reports them.
func (r *RekognitionDetector) DetectLines(base64Img string) ([]string, error) {
	idx := strings.Index(base64Img, ",")
	if idx < 0 || !strings.HasPrefix(base64Img, "data:image") {
		return nil, errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(base64Img[idx+1:])
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectText(context.TODO(), &rekognition.DetectTextInput{
		Image: &types.Image{Bytes: data},
		Filters: &types.DetectTextFilters{
			WordFilter: &types.DetectionFilter{
				MinConfidence: aws.Float32(75),
			},
		},
	})
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, det := range out.TextDetections {
		if det.Type == types.TextTypesLine && det.DetectedText != nil {
			lines = append(lines, *det.DetectedText)
		}
	}
	return lines, nil
}
