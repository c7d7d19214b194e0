package issuance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sunthewhat/easy-cred-api/type/shared/model"
)

type memTemplates struct {
	mu   sync.Mutex
	rows map[string]*model.Template
}

func (m *memTemplates) Create(_ context.Context, tmpl *model.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[tmpl.ID]; ok {
		return errors.New("duplicate template id")
	}
	c := *tmpl
	m.rows[tmpl.ID] = &c
	return nil
}

func (m *memTemplates) GetById(_ context.Context, id string) (*model.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.rows[id]; ok {
		c := *t
		return &c, nil
	}
	return nil, nil
}

func (m *memTemplates) GetByOwner(_ context.Context, ownerId string) ([]*model.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Template
	for _, t := range m.rows {
		if t.OwnerID == ownerId {
			c := *t
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memTemplates) SetThumbnail(_ context.Context, id string, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.rows[id]
	if !ok {
		return errors.New("no such template")
	}
	t.ThumbnailRef = ref
	return nil
}

func (m *memTemplates) CountByOwner(_ context.Context, ownerId string, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, t := range m.rows {
		if t.OwnerID == ownerId && (since.IsZero() || !t.CreatedAt.Before(since)) {
			n++
		}
	}
	return n, nil
}

type memCredentials struct {
	mu   sync.Mutex
	rows map[string]*model.Credential
	seq  int
}

func (m *memCredentials) Create(_ context.Context, cred *model.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[cred.ID]; ok {
		return errors.New("duplicate credential id")
	}
	m.seq++
	c := *cred
	c.CreatedAt = time.Unix(int64(m.seq), 0)
	m.rows[cred.ID] = &c
	return nil
}

func (m *memCredentials) GetById(_ context.Context, id string) (*model.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.rows[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *memCredentials) GetByOwner(_ context.Context, ownerId string) ([]*model.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Credential
	for _, c := range m.rows {
		if c.OwnerID == ownerId {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memCredentials) GetIdsByRecipient(_ context.Context, recipientId string, ownerId string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []*model.Credential
	for _, c := range m.rows {
		if c.RecipientID == recipientId && c.OwnerID == ownerId {
			rows = append(rows, c)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
	ids := []string{}
	for _, c := range rows {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (m *memCredentials) Revoke(_ context.Context, id string) (*model.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	c.IsRevoked = true
	cp := *c
	return &cp, nil
}

func (m *memCredentials) CountActiveByOwner(_ context.Context, ownerId string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, c := range m.rows {
		if c.OwnerID == ownerId && !c.IsRevoked {
			n++
		}
	}
	return n, nil
}

func (m *memCredentials) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

// credentialLists backs the organization and recipient list appends.
type credentialLists struct {
	mu    sync.Mutex
	lists map[string][]string
}

func (l *credentialLists) append(owner string, credentialId string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range l.lists[owner] {
		if id == credentialId {
			return
		}
	}
	l.lists[owner] = append(l.lists[owner], credentialId)
}

func (l *credentialLists) get(owner string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lists[owner]...)
}

type memOrganizations struct {
	credentialLists
	orgs map[string]*model.Organization
}

func (m *memOrganizations) Create(_ context.Context, org *model.Organization) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orgs[org.ID] = org
	return nil
}

func (m *memOrganizations) GetById(_ context.Context, id string) (*model.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.orgs[id], nil
}

func (m *memOrganizations) GetByEmail(_ context.Context, email string) (*model.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orgs {
		if o.Email == email {
			return o, nil
		}
	}
	return nil, nil
}

func (m *memOrganizations) AppendCredential(_ context.Context, orgId string, credentialId string) error {
	m.append(orgId, credentialId)
	return nil
}

func (m *memOrganizations) GetCredentialIds(_ context.Context, orgId string) ([]string, error) {
	return m.get(orgId), nil
}

type memRecipients struct {
	credentialLists
	byEmail map[string]*model.Recipient
	seq     int
}

func (m *memRecipients) Resolve(_ context.Context, email string) (*model.Recipient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.byEmail[email]; ok {
		return r, nil
	}
	m.seq++
	r := &model.Recipient{ID: fmt.Sprintf("recipient-%d", m.seq), Email: email}
	m.byEmail[email] = r
	return r, nil
}

func (m *memRecipients) GetByEmail(_ context.Context, email string) (*model.Recipient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byEmail[email], nil
}

func (m *memRecipients) AppendCredential(_ context.Context, recipientId string, credentialId string) error {
	m.append(recipientId, credentialId)
	return nil
}

type memBoundData struct {
	mu   sync.Mutex
	docs map[string]map[string]string
}

func (m *memBoundData) Put(_ context.Context, templateId string, credentialId string, data map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[templateId+"/"+credentialId] = data
	return nil
}

func (m *memBoundData) Get(_ context.Context, templateId string, credentialId string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.docs[templateId+"/"+credentialId], nil
}

func (m *memBoundData) Delete(_ context.Context, templateId string, credentialId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, templateId+"/"+credentialId)
	return nil
}

func (m *memBoundData) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

type memBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memBlobs) Put(_ context.Context, bucket string, object string, data []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ref := bucket + "/" + object
	m.objects[ref] = data
	return ref, nil
}

func (m *memBlobs) Get(_ context.Context, ref string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.objects[ref]
	if !ok {
		return nil, fmt.Errorf("no object %s", ref)
	}
	return b, nil
}

func (m *memBlobs) Remove(_ context.Context, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, ref)
	return nil
}

// inBucket counts stored objects under a bucket.
func (m *memBlobs) inBucket(bucket string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for ref := range m.objects {
		if strings.HasPrefix(ref, bucket+"/") {
			n++
		}
	}
	return n
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []Notification
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, msg Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.err
}
