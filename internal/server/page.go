package server

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"house_classifier/internal/domain/entity"
	"house_classifier/internal/domain/service/classifier"
	"house_classifier/pkg/httpx/reply"
	"house_classifier/pkg/httpx/req"
	"house_classifier/pkg/rest"
)

//go:embed templates/page.html.tmpl
var templates embed.FS

//nolint:gochecknoglobals
var pageTemplate = template.Must(template.ParseFS(templates, "templates/page.html.tmpl"))

// PageSettings are the static parts of the page.
type PageSettings struct {
	PreviewRows   int
	IconURL       string
	HeroImageURL  string
	IntroImageURL string
	Images        Images
}

type PageServer struct {
	classifierService classifierService
	settings          PageSettings
}

func NewPageServer(classifierService classifierService, settings PageSettings) PageServer {
	settings.PreviewRows = min(max(settings.PreviewRows, 1), classifier.MaxSampleSize)

	return PageServer{
		classifierService: classifierService,
		settings:          settings,
	}
}

type pageView struct {
	Settings     PageSettings
	Sample       []entity.House
	Form         inquiryForm
	MinElevation int
	MaxElevation int
	Error        string
	Result       *rest.Prediction
}

type inquiryForm struct {
	Name      string  `validate:"required"`
	Surname   string  `validate:"required"`
	Price     int64   `validate:"gte=1"`
	Sqft      float64 `validate:"gte=1"`
	Elevation int     `validate:"gte=0,lte=250"`
}

// decode fills every field it can parse so the form keeps the user's input,
// and reports the first field that failed.
func (f *inquiryForm) decode(get func(string) string) error {
	var errs []error

	f.Name = strings.TrimSpace(get("name"))
	f.Surname = strings.TrimSpace(get("surname"))

	if price, err := strconv.ParseInt(get("price"), 10, 64); err == nil {
		f.Price = price
	} else {
		errs = append(errs, errors.New("Price of House must be a whole number"))
	}

	if sqft, err := strconv.ParseFloat(get("sqft"), 64); err == nil {
		f.Sqft = sqft
	} else {
		errs = append(errs, errors.New("Square Feet of House must be a number"))
	}

	if elevation, err := strconv.Atoi(get("elevation")); err == nil {
		f.Elevation = elevation
	} else {
		errs = append(errs, errors.New("Elevation of House must be a whole number"))
	}

	if len(errs) > 0 {
		return errs[0]
	}

	return nil
}

func (f inquiryForm) toDomain() entity.Inquiry {
	return entity.Inquiry{
		Name:      f.Name,
		Surname:   f.Surname,
		Price:     f.Price,
		Sqft:      f.Sqft,
		Elevation: f.Elevation,
	}
}

func (s PageServer) getPage(w http.ResponseWriter, r *http.Request) error {
	view, err := s.newView()
	if err != nil {
		return fmt.Errorf("newView: %w", err)
	}

	return s.render(w, r, http.StatusOK, view)
}

func (s PageServer) postPage(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	view, err := s.newView()
	if err != nil {
		return fmt.Errorf("newView: %w", err)
	}

	if err = req.ReadForm(r, &view.Form, view.Form.decode); err != nil {
		return s.renderError(w, r, view, err)
	}

	result, err := s.classifierService.Classify(ctx, view.Form.toDomain())
	if err != nil {
		if failure.IsInvalidArgumentError(err) {
			return s.renderError(w, r, view, err)
		}

		return fmt.Errorf("classifierService.Classify: %w", err)
	}

	prediction := newRESTPrediction(result, s.settings.Images)
	view.Result = &prediction

	return s.render(w, r, http.StatusOK, view)
}

func (s PageServer) newView() (pageView, error) {
	sample, err := s.classifierService.Sample(s.settings.PreviewRows)
	if err != nil {
		return pageView{}, fmt.Errorf("classifierService.Sample: %w", err)
	}

	return pageView{
		Settings:     s.settings,
		Sample:       sample,
		Form:         inquiryForm{Price: 1, Sqft: 1},
		MinElevation: classifier.MinElevation,
		MaxElevation: classifier.MaxElevation,
	}, nil
}

func (s PageServer) renderError(w http.ResponseWriter, r *http.Request, view pageView, err error) error {
	view.Error = failure.Description(err)
	if view.Error == "" {
		view.Error = "Please check the values you entered."
	}

	return s.render(w, r, reply.Status(err), view)
}

func (s PageServer) render(w http.ResponseWriter, r *http.Request, status int, view pageView) error {
	var buf bytes.Buffer

	if err := pageTemplate.Execute(&buf, view); err != nil {
		return failure.NewInternalServerError(fmt.Errorf("pageTemplate.Execute: %w", err).Error())
	}

	reply.HTML(r.Context(), w, status, buf.Bytes())

	return nil
}
