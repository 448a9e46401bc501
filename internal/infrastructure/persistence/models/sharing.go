package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sharelist/backend/internal/domain/sharing"
)

// ListModel is the persistence model for the List aggregate root.
type ListModel struct {
	AggregateModel
	Name    string            `gorm:"type:varchar(200);not null"`
	OwnerID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Items   []ItemModel       `gorm:"foreignKey:ListID"`
	Invites []ListInviteModel `gorm:"foreignKey:ListID"`
}

// TableName returns the table name for GORM
func (ListModel) TableName() string {
	return "lists"
}

// ItemModel is the persistence model for the Item entity.
type ItemModel struct {
	BaseModel
	Name   string    `gorm:"type:varchar(200);not null"`
	ListID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "items"
}

// ListInviteModel records one user's membership in a list's invite set.
// The composite primary key makes duplicate invitations impossible at the
// storage layer.
type ListInviteModel struct {
	ListID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ListInviteModel) TableName() string {
	return "list_invites"
}

// ToDomain converts the persistence model to a domain List aggregate,
// including its items (ordered by creation) and invite set.
func (m *ListModel) ToDomain() *sharing.List {
	items := make([]sharing.Item, len(m.Items))
	for i, im := range m.Items {
		items[i] = *im.ToDomain()
	}
	invited := make([]uuid.UUID, len(m.Invites))
	for i, inv := range m.Invites {
		invited[i] = inv.UserID
	}
	return &sharing.List{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		OwnerID:           m.OwnerID,
		Items:             items,
		InvitedUserIDs:    invited,
	}
}

// FromDomain populates the persistence model from a domain List aggregate.
func (m *ListModel) FromDomain(l *sharing.List) {
	m.FromDomainAggregateRoot(l.BaseAggregateRoot)
	m.Name = l.Name
	m.OwnerID = l.OwnerID
	m.Items = make([]ItemModel, len(l.Items))
	for i := range l.Items {
		m.Items[i] = *ItemModelFromDomain(&l.Items[i])
	}
	m.Invites = make([]ListInviteModel, len(l.InvitedUserIDs))
	for i, userID := range l.InvitedUserIDs {
		m.Invites[i] = ListInviteModel{ListID: l.ID, UserID: userID, CreatedAt: time.Now()}
	}
}

// ListModelFromDomain creates a new persistence model from a domain List aggregate.
func ListModelFromDomain(l *sharing.List) *ListModel {
	m := &ListModel{}
	m.FromDomain(l)
	return m
}

// ToDomain converts the persistence model to a domain Item entity.
func (m *ItemModel) ToDomain() *sharing.Item {
	return &sharing.Item{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		ListID:     m.ListID,
	}
}

// ItemModelFromDomain creates a new persistence model from a domain Item entity.
func ItemModelFromDomain(i *sharing.Item) *ItemModel {
	m := &ItemModel{}
	m.FromDomainBaseEntity(i.BaseEntity)
	m.Name = i.Name
	m.ListID = i.ListID
	return m
}
