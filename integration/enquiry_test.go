package integration

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/akeren/enquiry-portal/config"
	"github.com/akeren/enquiry-portal/config/router"
	"github.com/akeren/enquiry-portal/domain"
	"github.com/akeren/enquiry-portal/internal/log"
	"github.com/akeren/enquiry-portal/internal/mail"
	"github.com/akeren/enquiry-portal/internal/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// captureDispatcher stands in for the SMTP relay during API tests.
type captureDispatcher struct {
	mu       sync.Mutex
	messages []mail.Message
	fail     bool
}

func (d *captureDispatcher) Send(_ context.Context, msg mail.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fail {
		return context.DeadlineExceeded
	}

	d.messages = append(d.messages, msg)
	return nil
}

func (d *captureDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.messages)
}

func (d *captureDispatcher) last() mail.Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.messages[len(d.messages)-1]
}

type EnquiryPortalTestSuite struct {
	suite.Suite
	db         *gorm.DB
	server     *httptest.Server
	baseURL    string
	logger     *log.Logger
	appConfig  *config.ApplicationConfig
	dispatcher *captureDispatcher
	client     *http.Client
}

func (s *EnquiryPortalTestSuite) SetupSuite() {
	var err error
	s.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	s.Require().NoError(err)

	err = s.db.AutoMigrate(&models.Enquiry{})
	s.Require().NoError(err)

	s.logger = log.NewLoggerWithJSONOutput()
	s.dispatcher = &captureDispatcher{}

	s.appConfig = &config.ApplicationConfig{
		DB:     s.db,
		Logger: s.logger,
		Mailer: s.dispatcher,
		Admin: &config.AdminConfig{
			Username:   "admin",
			Password:   "portal-secret",
			SessionTTL: 30 * time.Minute,
		},
	}

	s.appConfig.RouterService = router.CreateRouterService(s.logger, nil, &router.RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    30 * time.Second,
	})

	s.Require().NoError(domain.SetupCoreDomain(s.appConfig))

	s.server = httptest.NewServer(s.appConfig.RouterService.GetEngine())
	s.baseURL = s.server.URL

	// Redirects are part of the behavior under test; never follow them.
	s.client = &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (s *EnquiryPortalTestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.db != nil {
		sqlDB, _ := s.db.DB()
		sqlDB.Close()
	}
}

func (s *EnquiryPortalTestSuite) SetupTest() {
	s.db.Exec("DELETE FROM enquiries")
	s.dispatcher.mu.Lock()
	s.dispatcher.messages = nil
	s.dispatcher.fail = false
	s.dispatcher.mu.Unlock()
}

// Helper methods

func (s *EnquiryPortalTestSuite) postForm(path string, form url.Values) *http.Response {
	resp, err := s.client.PostForm(s.baseURL+path, form)
	s.Require().NoError(err)
	return resp
}

func (s *EnquiryPortalTestSuite) readBody(resp *http.Response) string {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return string(body)
}

func sampleForm() url.Values {
	return url.Values{
		"email":       {"applicant@example.com"},
		"fullName":    {"Jane Applicant"},
		"enquiryDate": {"2024-06-15"},
		"contactNo":   {"5551234567"},
		"ssc":         {"Central High"},
		"sscYear":     {"2018"},
	}
}

func (s *EnquiryPortalTestSuite) login() *http.Cookie {
	resp := s.postForm("/login", url.Values{
		"user": {"admin"},
		"psw":  {"portal-secret"},
	})
	defer resp.Body.Close()
	s.Require().Equal(http.StatusFound, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "enquiry_session" {
			return cookie
		}
	}

	s.Require().FailNow("no session cookie returned on login")
	return nil
}

// Submission flow

func (s *EnquiryPortalTestSuite) TestSubmitForm_RedirectsToSuccessAndStoresRow() {
	resp := s.postForm("/submit-form", sampleForm())
	body := s.readBody(resp)

	s.Equal(http.StatusFound, resp.StatusCode, body)
	s.Equal("/success", resp.Header.Get("Location"))

	var count int64
	s.db.Model(&models.Enquiry{}).Count(&count)
	s.Equal(int64(1), count)

	var stored models.Enquiry
	s.NoError(s.db.First(&stored).Error)
	s.Equal("applicant@example.com", stored.Email)
	s.Equal("Jane Applicant", stored.FullName)
	s.Equal("Central High", stored.SSC)
}

func (s *EnquiryPortalTestSuite) TestSubmitForm_SendsConfirmationEmail() {
	resp := s.postForm("/submit-form", sampleForm())
	resp.Body.Close()

	s.Equal(1, s.dispatcher.count())
	msg := s.dispatcher.last()
	s.Equal("applicant@example.com", msg.To)
	s.Equal("Thank You for Your Enquiry!", msg.Subject)
	s.Contains(msg.HTMLBody, "Dear Jane Applicant,")
}

func (s *EnquiryPortalTestSuite) TestSubmitForm_ResubmissionStoresSecondRow() {
	for i := 0; i < 2; i++ {
		resp := s.postForm("/submit-form", sampleForm())
		resp.Body.Close()
		s.Equal(http.StatusFound, resp.StatusCode)
	}

	var count int64
	s.db.Model(&models.Enquiry{}).Count(&count)
	s.Equal(int64(2), count)
	s.Equal(2, s.dispatcher.count())
}

func (s *EnquiryPortalTestSuite) TestSubmitForm_MissingRequiredFieldIs400() {
	form := sampleForm()
	form.Del("email")

	resp := s.postForm("/submit-form", form)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var count int64
	s.db.Model(&models.Enquiry{}).Count(&count)
	s.Equal(int64(0), count)
	s.Equal(0, s.dispatcher.count())
}

func (s *EnquiryPortalTestSuite) TestSubmitForm_InvalidDateIs400() {
	form := sampleForm()
	form.Set("enquiryDate", "15/06/2024")

	resp := s.postForm("/submit-form", form)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *EnquiryPortalTestSuite) TestSubmitForm_MailFailureKeepsRow() {
	s.dispatcher.mu.Lock()
	s.dispatcher.fail = true
	s.dispatcher.mu.Unlock()

	resp := s.postForm("/submit-form", sampleForm())
	body := s.readBody(resp)

	s.Equal(http.StatusInternalServerError, resp.StatusCode)
	s.Equal("There was an error sending your confirmation email.", body)

	var count int64
	s.db.Model(&models.Enquiry{}).Count(&count)
	s.Equal(int64(1), count)
}

func (s *EnquiryPortalTestSuite) TestSuccessPage() {
	resp, err := s.client.Get(s.baseURL + "/success")
	s.Require().NoError(err)
	body := s.readBody(resp)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("<h1>Thank you for your enquiry!</h1>", body)
}

// Login and sessions

func (s *EnquiryPortalTestSuite) TestLoginPage_ServesForm() {
	resp, err := s.client.Get(s.baseURL + "/login")
	s.Require().NoError(err)
	body := s.readBody(resp)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get("Content-Type"), "text/html")
	s.Contains(body, `name="user"`)
	s.Contains(body, `name="psw"`)
}

func (s *EnquiryPortalTestSuite) TestLogin_BadCredentialsIs401() {
	resp := s.postForm("/login", url.Values{
		"user": {"admin"},
		"psw":  {"wrong"},
	})
	body := s.readBody(resp)

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal(`Invalid username or password. <a href="/login">Try again</a>`, body)
}

func (s *EnquiryPortalTestSuite) TestLogin_GoodCredentialsSetsCookieAndRedirects() {
	cookie := s.login()

	s.NotEmpty(cookie.Value)
	s.True(cookie.HttpOnly)
}

func (s *EnquiryPortalTestSuite) TestEnquiries_WithoutSessionIs401() {
	resp, err := s.client.Get(s.baseURL + "/enquiries")
	s.Require().NoError(err)
	body := s.readBody(resp)

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal(`Unauthorized: Please <a href='/login'>login</a> first.`, body)
}

func (s *EnquiryPortalTestSuite) TestEnquiries_WithBogusCookieIs401() {
	req, err := http.NewRequest(http.MethodGet, s.baseURL+"/enquiries", nil)
	s.Require().NoError(err)
	req.AddCookie(&http.Cookie{Name: "enquiry_session", Value: "forged-token"})

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *EnquiryPortalTestSuite) TestEnquiries_ListsRowsWithFormattedDates() {
	resp := s.postForm("/submit-form", sampleForm())
	resp.Body.Close()

	cookie := s.login()

	req, err := http.NewRequest(http.MethodGet, s.baseURL+"/enquiries", nil)
	s.Require().NoError(err)
	req.AddCookie(cookie)

	listResp, err := s.client.Do(req)
	s.Require().NoError(err)
	body := s.readBody(listResp)

	s.Equal(http.StatusOK, listResp.StatusCode)
	s.Contains(listResp.Header.Get("Content-Type"), "text/html")
	s.Contains(body, "applicant@example.com")
	s.Contains(body, "Jane Applicant")
	s.Contains(body, "2024-06-15")
	s.False(strings.Contains(body, "00:00:00"), "dates must render as YYYY-MM-DD only")
}

func (s *EnquiryPortalTestSuite) TestEnquiries_RepeatedListingIsStable() {
	resp := s.postForm("/submit-form", sampleForm())
	resp.Body.Close()

	cookie := s.login()

	var bodies [2]string
	for i := range bodies {
		req, err := http.NewRequest(http.MethodGet, s.baseURL+"/enquiries", nil)
		s.Require().NoError(err)
		req.AddCookie(cookie)

		listResp, err := s.client.Do(req)
		s.Require().NoError(err)
		s.Equal(http.StatusOK, listResp.StatusCode)
		bodies[i] = s.readBody(listResp)
	}

	s.Equal(bodies[0], bodies[1], "listing must not change without intervening writes")

	var count int64
	s.db.Model(&models.Enquiry{}).Count(&count)
	s.Equal(int64(1), count)
}

func (s *EnquiryPortalTestSuite) TestLogout_InvalidatesSession() {
	cookie := s.login()

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/logout", nil)
	s.Require().NoError(err)
	req.AddCookie(cookie)

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusFound, resp.StatusCode)

	listReq, err := http.NewRequest(http.MethodGet, s.baseURL+"/enquiries", nil)
	s.Require().NoError(err)
	listReq.AddCookie(cookie)

	listResp, err := s.client.Do(listReq)
	s.Require().NoError(err)
	defer listResp.Body.Close()

	s.Equal(http.StatusUnauthorized, listResp.StatusCode)
}

func (s *EnquiryPortalTestSuite) TestHealthEndpoint() {
	resp, err := s.client.Get(s.baseURL + "/health")
	s.Require().NoError(err)
	body := s.readBody(resp)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(body, `"database":1`)
}

func TestEnquiryPortalSuite(t *testing.T) {
	suite.Run(t, new(EnquiryPortalTestSuite))
}
