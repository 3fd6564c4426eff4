package category

import (
	"github.com/google/uuid"

	"shopapi/internal/domain"
)

type Store interface {
	Categories() []domain.Category
	Category(id string) (domain.Category, error)
	CreateCategory(c domain.Category) domain.Category
	SaveCategory(c domain.Category) error
	DeleteCategory(id string) error
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

type CreateInput struct {
	Name     string
	ParentID *string
}

type UpdateInput struct {
	Name     *string
	ParentID *string
	// ClearParent detaches the category from its parent, making it a root.
	ClearParent bool
}

func (s *Service) List() []domain.Category {
	return s.store.Categories()
}

// Tree assembles the parent/children hierarchy. Categories referencing a
// missing parent are omitted, matching the flat-list-to-tree pass of the
// original API. Cycles are not prevented at write time, so orphaned loops
// simply never reach a root.
func (s *Service) Tree() []*domain.CategoryNode {
	all := s.store.Categories()

	nodes := make(map[string]*domain.CategoryNode, len(all))
	for _, c := range all {
		nodes[c.ID] = &domain.CategoryNode{Category: c, Children: []*domain.CategoryNode{}}
	}

	var roots []*domain.CategoryNode
	for _, c := range all {
		node := nodes[c.ID]
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*c.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		}
	}
	if roots == nil {
		roots = []*domain.CategoryNode{}
	}
	return roots
}

func (s *Service) Get(id string) (domain.Category, error) {
	return s.store.Category(id)
}

func (s *Service) Create(in CreateInput) (domain.Category, error) {
	if in.ParentID != nil {
		if _, err := s.store.Category(*in.ParentID); err != nil {
			return domain.Category{}, err
		}
	}
	c := domain.Category{
		ID:       uuid.NewString(),
		Name:     in.Name,
		ParentID: in.ParentID,
	}
	return s.store.CreateCategory(c), nil
}

func (s *Service) Update(id string, in UpdateInput) (domain.Category, error) {
	c, err := s.store.Category(id)
	if err != nil {
		return domain.Category{}, err
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	switch {
	case in.ClearParent:
		c.ParentID = nil
	case in.ParentID != nil:
		if _, err := s.store.Category(*in.ParentID); err != nil {
			return domain.Category{}, err
		}
		c.ParentID = in.ParentID
	}
	if err := s.store.SaveCategory(c); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (s *Service) Delete(id string) error {
	return s.store.DeleteCategory(id)
}
