package taskstore

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/prioritodo/internal/model"
)

// In-memory task list for one session. Nothing is written to disk.
// Not safe for concurrent use; hosts drive it from a single event loop.

// Store holds tasks ordered by descending priority weight.
type Store struct {
	tasks []model.Task
	newID func() string
}

func New() *Store {
	return &Store{newID: uuid.NewString}
}

// Add validates and inserts a task, then re-sorts. Returns the new task's id.
func (s *Store) Add(title string, due *time.Time, p model.Priority) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", &ValidationError{Field: "title", Err: ErrEmptyTitle}
	}
	if !p.Valid() {
		return "", &ValidationError{Field: "priority", Err: ErrUnknownPriority}
	}
	t := model.Task{
		ID:       s.newID(),
		Title:    title,
		Due:      due,
		Priority: p,
	}
	s.tasks = append(s.tasks, clone(t))
	s.sort()
	return t.ID, nil
}

// Remove deletes the task with id. Unknown ids are ignored.
func (s *Store) Remove(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
}

// Complete marks the task done. Unknown ids and completed tasks are ignored.
func (s *Store) Complete(id string) {
	if i := s.index(id); i >= 0 {
		s.tasks[i].Completed = true
	}
}

func (s *Store) ClearAll() {
	s.tasks = nil
}

// List returns a copy of the ordered tasks.
func (s *Store) List() []model.Task {
	out := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = clone(t)
	}
	return out
}

func (s *Store) Get(id string) (model.Task, bool) {
	if i := s.index(id); i >= 0 {
		return clone(s.tasks[i]), true
	}
	return model.Task{}, false
}

func (s *Store) Len() int { return len(s.tasks) }

func (s *Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func clone(t model.Task) model.Task {
	if t.Due != nil {
		d := *t.Due
		t.Due = &d
	}
	return t
}

// sort keeps insertion order among equal weights.
func (s *Store) sort() {
	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].Priority.Weight() > s.tasks[j].Priority.Weight()
	})
}
