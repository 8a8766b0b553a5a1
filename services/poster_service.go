package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/fitstudio/backend/configs"
	"github.com/fitstudio/backend/models"
	"github.com/fitstudio/backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PosterService renders a shareable course poster (headless Chrome over
// an HTML template, QR code embedded as a data URI), uploads the PNG to
// Cloudinary and stores the URL on the course.
type PosterService struct {
	db *gorm.DB
}

func NewPosterService(db *gorm.DB) *PosterService {
	return &PosterService{db: db}
}

// GenerateCoursePoster builds the poster for a course and returns its URL.
func (s *PosterService) GenerateCoursePoster(course *models.Course, shareURL string) (string, error) {
	qrBytes, err := utils.GenerateQRCode(shareURL, 256)
	if err != nil {
		return "", fmt.Errorf("poster: qr code: %w", err)
	}

	htmlData, err := renderPosterHTML(course, qrBytes)
	if err != nil {
		return "", fmt.Errorf("poster: render html: %w", err)
	}

	pngBytes, err := screenshotHTML(htmlData)
	if err != nil {
		return "", fmt.Errorf("poster: screenshot: %w", err)
	}

	posterURL, err := uploadPoster(pngBytes, course.ID.String())
	if err != nil {
		return "", fmt.Errorf("poster: upload: %w", err)
	}

	if err := s.db.Model(course).Update("poster_url", posterURL).Error; err != nil {
		log.Printf("🔥 Failed to save poster URL for course %s: %v", course.ID, err)
	}
	course.PosterURL = &posterURL
	return posterURL, nil
}

func renderPosterHTML(course *models.Course, qrPNG []byte) (string, error) {
	tmpl, err := template.ParseFiles("templates/poster.html")
	if err != nil {
		return "", err
	}

	data := struct {
		Title       string
		CoachName   string
		Category    string
		Price       float64
		CoverURL    string
		QRDataURI   template.URL
		GeneratedAt string
	}{
		Title:       course.Title,
		CoachName:   course.Coach.FullName,
		Category:    course.Category,
		Price:       course.Price,
		QRDataURI:   template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(qrPNG)),
		GeneratedAt: time.Now().Format("January 2, 2006"),
	}
	if course.CoverURL != nil {
		data.CoverURL = *course.CoverURL
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func screenshotHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pngBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.EmulateViewport(750, 1334),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.FullScreenshot(&pngBuffer, 90),
	)
	if err != nil {
		return nil, err
	}
	return pngBuffer, nil
}

func uploadPoster(fileBytes []byte, courseID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID: fmt.Sprintf("posters/%s_%s", courseID, uuid.New().String()),
		Folder:   "fitness_studio_posters",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
