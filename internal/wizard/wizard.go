package wizard

import (
	"context"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/veridian-ai/careers-portal/internal/auth"
	"github.com/veridian-ai/careers-portal/internal/dtos"
)

// Step is the wizard's ordinal position, 1 through 6.
type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepProfessionalSummary
	StepWorkExperience
	StepEducation
	StepSkillsCertifications
	StepReviewSubmit
)

// StepInfo describes a step for the sidebar.
type StepInfo struct {
	ID          Step
	Title       string
	Description string
}

var Steps = []StepInfo{
	{StepPersonalInfo, "Personal Info", "Basic information"},
	{StepProfessionalSummary, "Professional Summary", "Tell us about yourself"},
	{StepWorkExperience, "Work Experience", "Your career history"},
	{StepEducation, "Education", "Academic background"},
	{StepSkillsCertifications, "Skills & Certifications", "Your expertise"},
	{StepReviewSubmit, "Review & Submit", "Final review"},
}

var (
	ErrResumeRequired     = errors.New("resume URL is required")
	ErrInvalidURLs        = errors.New("one or more URLs are invalid")
	ErrNotAuthenticated   = errors.New("authentication required")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
)

// Submitter posts a finished application. *services.PortalClient satisfies
// this; tests substitute their own.
type Submitter interface {
	SubmitApplication(ctx context.Context, jobPostingID string, payload dtos.ApplicationPayload, accessToken string) (*dtos.SubmissionReceipt, error)
}

// Notifier is the toast equivalent: user-visible success/failure messages.
type Notifier interface {
	Success(title, message string)
	Failure(title, message string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string, string) {}
func (nopNotifier) Failure(string, string) {}

var validate = validator.New()

// validURL accepts empty strings; required-ness is the caller's rule, not the
// parser's.
func validURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return true
	}
	return validate.Var(raw, "url") == nil
}

// Wizard is the six-step application form's state machine. It is not safe
// for concurrent use; like the form it models, it belongs to one candidate
// session at a time.
type Wizard struct {
	jobID     string
	session   *auth.Session
	submitter Submitter
	notifier  Notifier

	step  Step
	draft *Draft

	resumeURLError        string
	certificationURLError string
	submitting            bool
}

// New starts a wizard at step 1 with a draft pre-filled from the signed-in
// identity. The session is passed in explicitly; there is no global auth
// state.
func New(jobID string, session *auth.Session, submitter Submitter, notifier Notifier) *Wizard {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	w := &Wizard{
		jobID:     jobID,
		session:   session,
		submitter: submitter,
		notifier:  notifier,
		step:      StepPersonalInfo,
		draft:     NewDraft(),
	}
	if identity, ok := session.Identity(); ok {
		w.draft.FirstName = identity.FirstName
		w.draft.LastName = identity.LastName
		w.draft.Email = identity.Email
	}
	return w
}

func (w *Wizard) CurrentStep() Step { return w.step }
func (w *Wizard) Draft() *Draft     { return w.draft }

func (w *Wizard) ResumeURLError() string        { return w.resumeURLError }
func (w *Wizard) CertificationURLError() string { return w.certificationURLError }

// Next advances one step, but only when the current step's gate holds. At
// the last step it is a no-op.
func (w *Wizard) Next() bool {
	if w.step >= StepReviewSubmit {
		return false
	}
	if !w.IsStepValid(w.step) {
		return false
	}
	w.step++
	return true
}

// Previous retreats one step. Retreating is never gated.
func (w *Wizard) Previous() bool {
	if w.step <= StepPersonalInfo {
		return false
	}
	w.step--
	return true
}

// GoTo jumps straight to a step, skipping any gates in between. The sidebar
// allows this deliberately; only forward auto-advance is gated.
func (w *Wizard) GoTo(step Step) bool {
	if step < StepPersonalInfo || step > StepReviewSubmit {
		return false
	}
	w.step = step
	return true
}

// stepGates maps each step to its pure validity predicate so every gate can
// be tested directly.
var stepGates = map[Step]func(*Wizard) bool{
	StepPersonalInfo: func(w *Wizard) bool {
		first, last, email := w.effectiveIdentity()
		return w.draft.Phone != "" && first != "" && last != "" && email != ""
	},
	StepProfessionalSummary: func(w *Wizard) bool {
		return strings.TrimSpace(w.draft.ProfessionalSummary) != ""
	},
	StepWorkExperience:       func(*Wizard) bool { return true },
	StepEducation:            func(*Wizard) bool { return true },
	StepSkillsCertifications: (*Wizard).resumeGate,
	StepReviewSubmit:         (*Wizard).resumeGate,
}

func (w *Wizard) IsStepValid(step Step) bool {
	gate, ok := stepGates[step]
	return ok && gate(w)
}

// resumeGate is the one hard requirement at submission time: a present,
// parseable resume URL and no outstanding certification URL error.
func (w *Wizard) resumeGate() bool {
	return strings.TrimSpace(w.draft.ResumeURL) != "" &&
		w.resumeURLError == "" &&
		w.certificationURLError == ""
}

// SetResumeURL stores the value and validates it immediately, mirroring the
// inline field error in the form.
func (w *Wizard) SetResumeURL(raw string) {
	w.draft.ResumeURL = raw
	if strings.TrimSpace(raw) != "" && !validURL(raw) {
		w.resumeURLError = "Please enter a valid URL"
	} else {
		w.resumeURLError = ""
	}
}

// AddSkill trims, rejects empty strings and exact duplicates, and reports
// whether the skill was added (the form clears its input on true).
func (w *Wizard) AddSkill(raw string) bool {
	skill := strings.TrimSpace(raw)
	if skill == "" || w.draft.hasSkill(skill) {
		return false
	}
	w.draft.Skills = append(w.draft.Skills, skill)
	return true
}

func (w *Wizard) RemoveSkill(skill string) {
	for i, s := range w.draft.Skills {
		if s == skill {
			w.draft.Skills = append(w.draft.Skills[:i], w.draft.Skills[i+1:]...)
			return
		}
	}
}

// AddCertification validates the URL at the moment of entry. An invalid URL
// raises a field error and adds nothing; a duplicate is ignored silently.
func (w *Wizard) AddCertification(raw string) bool {
	cert := strings.TrimSpace(raw)
	if cert == "" || w.draft.hasCertification(cert) {
		return false
	}
	if !validURL(cert) {
		w.certificationURLError = "Please enter a valid certificate URL"
		return false
	}
	w.draft.Certifications = append(w.draft.Certifications, cert)
	w.certificationURLError = ""
	return true
}

func (w *Wizard) RemoveCertification(cert string) {
	for i, c := range w.draft.Certifications {
		if c == cert {
			w.draft.Certifications = append(w.draft.Certifications[:i], w.draft.Certifications[i+1:]...)
			return
		}
	}
}

// effectiveIdentity resolves name and email with identity values winning over
// draft input.
func (w *Wizard) effectiveIdentity() (first, last, email string) {
	first, last, email = w.draft.FirstName, w.draft.LastName, w.draft.Email
	if identity, ok := w.session.Identity(); ok {
		if identity.FirstName != "" {
			first = identity.FirstName
		}
		if identity.LastName != "" {
			last = identity.LastName
		}
		if identity.Email != "" {
			email = identity.Email
		}
	}
	return first, last, email
}

// BuildPayload assembles the wire payload. Empty and zero values are left
// unset so omitempty drops them entirely; name and email come only from the
// authenticated identity; row ids never leave the draft.
func (w *Wizard) BuildPayload() dtos.ApplicationPayload {
	p := dtos.ApplicationPayload{}

	if identity, ok := w.session.Identity(); ok {
		p.FirstName = identity.FirstName
		p.LastName = identity.LastName
		p.Email = identity.Email
	}

	p.Phone = w.draft.Phone
	p.ProfessionalSummary = w.draft.ProfessionalSummary
	p.ResumeURL = w.draft.ResumeURL
	if w.draft.TotalExperienceYears > 0 {
		p.TotalExperienceYears = w.draft.TotalExperienceYears
	}
	if len(w.draft.Certifications) > 0 {
		p.CertificationEntries = append([]string(nil), w.draft.Certifications...)
	}
	if len(w.draft.Skills) > 0 {
		p.Skills = append([]string(nil), w.draft.Skills...)
	}
	if w.draft.ExpectedSalary != "" {
		p.ExpectedSalary = w.draft.ExpectedSalary + " " + w.draft.SalaryCurrency
	}
	p.Country = w.draft.Country
	return p
}

// SubmitOutcome tells the caller where to send the candidate next. Redirect
// is "/jobs" after success, or the login route when authentication is
// missing; empty means stay put.
type SubmitOutcome struct {
	Receipt  *dtos.SubmissionReceipt
	Redirect string
}

// Submit runs the submission protocol from the review step: local gates
// first, then authentication, then a single POST. On failure the wizard
// stays on the review step with the draft intact so the candidate can retry.
// The draft does not survive a login redirect.
func (w *Wizard) Submit(ctx context.Context) (SubmitOutcome, error) {
	if w.submitting {
		return SubmitOutcome{}, ErrSubmissionInFlight
	}

	if strings.TrimSpace(w.draft.ResumeURL) == "" {
		w.notifier.Failure("Resume Required",
			"Please provide your resume URL before submitting your application.")
		return SubmitOutcome{}, ErrResumeRequired
	}
	if w.resumeURLError != "" || w.certificationURLError != "" {
		w.notifier.Failure("Invalid URLs",
			"Please fix any invalid URLs before submitting your application.")
		return SubmitOutcome{}, ErrInvalidURLs
	}

	if !w.session.IsAuthenticated() || w.session.AccessToken() == "" {
		w.notifier.Failure("Authentication Required",
			"Please log in to submit your application.")
		return SubmitOutcome{Redirect: w.loginRedirect()}, ErrNotAuthenticated
	}

	w.submitting = true
	defer func() { w.submitting = false }()

	receipt, err := w.submitter.SubmitApplication(ctx, w.jobID, w.BuildPayload(), w.session.AccessToken())
	if err != nil {
		w.notifier.Failure("Submission Failed", submissionFailureMessage(err))
		return SubmitOutcome{}, err
	}

	w.notifier.Success("Application Submitted!",
		"Thank you for your interest. We'll review your application and get back to you soon.")
	return SubmitOutcome{Receipt: receipt, Redirect: "/jobs"}, nil
}

func (w *Wizard) loginRedirect() string {
	return "/auth?redirect=" + url.QueryEscape("/apply/"+w.jobID)
}

// submissionFailureMessage shows the server's message when there is one and a
// generic retry message otherwise. Transport failures and upstream
// rejections read the same to the candidate.
func submissionFailureMessage(err error) string {
	var userErr interface{ UserMessage() string }
	if errors.As(err, &userErr) {
		return userErr.UserMessage()
	}
	return "An error occurred while submitting your application."
}
