package client

import "context"

// Screen models the state every resource screen owns: the fetched records,
// a draft form with a visibility flag, and callbacks for notifications and
// destructive-action confirmation. R is the record type, F the draft form.
//
// On a failed submit or delete the prior state is left intact: the draft
// keeps its values and the record list is not touched.
type Screen[R any, F any] struct {
	records     []R
	draft       F
	formVisible bool
	loading     bool

	list     func(ctx context.Context) ([]R, error)
	create   func(ctx context.Context, draft F) (*R, error)
	remove   func(ctx context.Context, id int64) error
	validate func(draft F) error

	notify  func(message string)
	confirm func(prompt string) bool
}

type ScreenConfig[R any, F any] struct {
	List     func(ctx context.Context) ([]R, error)
	Create   func(ctx context.Context, draft F) (*R, error)
	Remove   func(ctx context.Context, id int64) error
	Validate func(draft F) error
	Notify   func(message string)
	Confirm  func(prompt string) bool
}

func NewScreen[R any, F any](cfg ScreenConfig[R, F]) *Screen[R, F] {
	s := &Screen[R, F]{
		list:     cfg.List,
		create:   cfg.Create,
		remove:   cfg.Remove,
		validate: cfg.Validate,
		notify:   cfg.Notify,
		confirm:  cfg.Confirm,
	}
	if s.notify == nil {
		s.notify = func(string) {}
	}
	if s.confirm == nil {
		s.confirm = func(string) bool { return true }
	}
	return s
}

func (s *Screen[R, F]) Records() []R      { return s.records }
func (s *Screen[R, F]) Loading() bool     { return s.loading }
func (s *Screen[R, F]) FormVisible() bool { return s.formVisible }
func (s *Screen[R, F]) Draft() F          { return s.draft }

func (s *Screen[R, F]) SetDraft(draft F) { s.draft = draft }

func (s *Screen[R, F]) ShowForm() { s.formVisible = true }

func (s *Screen[R, F]) HideForm() {
	s.formVisible = false
	var empty F
	s.draft = empty
}

// Load fetches the record list, the on-mount behavior of every screen.
// On failure the previous records are kept and the user is notified.
func (s *Screen[R, F]) Load(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	records, err := s.list(ctx)
	if err != nil {
		s.notify("Unable to load records")
		return err
	}
	s.records = records
	return nil
}

// Submit validates the draft, creates the record and on success appends it
// locally, clears the draft and hides the form. There is no guard against
// rapid repeated submits.
func (s *Screen[R, F]) Submit(ctx context.Context) error {
	if s.validate != nil {
		if err := s.validate(s.draft); err != nil {
			s.notify(err.Error())
			return err
		}
	}

	created, err := s.create(ctx, s.draft)
	if err != nil {
		s.notify(errorMessage(err))
		return err
	}

	s.records = append(s.records, *created)
	s.HideForm()
	return nil
}

// Delete asks for confirmation before issuing the call; an unconfirmed
// delete is a no-op, not an error.
func (s *Screen[R, F]) Delete(ctx context.Context, id int64, match func(R) bool) error {
	if !s.confirm("Are you sure you want to delete this record?") {
		return nil
	}

	if err := s.remove(ctx, id); err != nil {
		s.notify(errorMessage(err))
		return err
	}

	kept := s.records[:0]
	for _, record := range s.records {
		if !match(record) {
			kept = append(kept, record)
		}
	}
	s.records = kept
	return nil
}

func errorMessage(err error) string {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Message
	}
	return "Request failed"
}
