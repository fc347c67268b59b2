package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/pkg/errors"
)

// fakeChatRepo is an in-memory ChatRepository. Watch channels receive a
// fresh snapshot after every mutation, mirroring how the real adapter's
// push streams behave.
type fakeChatRepo struct {
	mu       sync.Mutex
	rooms    map[string]*entity.ChatRoom
	messages map[string][]*entity.ChatMessage

	roomsWatchers   []chan []*entity.ChatRoom
	roomWatchers    map[string][]chan *entity.ChatRoom
	messageWatchers map[string][]chan []*entity.ChatMessage

	// now lets tests control the timestamps the datastore would assign.
	now func() time.Time
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		rooms:           make(map[string]*entity.ChatRoom),
		messages:        make(map[string][]*entity.ChatMessage),
		roomWatchers:    make(map[string][]chan *entity.ChatRoom),
		messageWatchers: make(map[string][]chan []*entity.ChatMessage),
		now:             time.Now,
	}
}

func (f *fakeChatRepo) CreateRoom(ctx context.Context, room *entity.ChatRoom) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	room.ID = uuid.New().String()
	room.CreatedAt = f.now()
	room.LastMessageAt = room.CreatedAt

	clone := *room
	f.rooms[room.ID] = &clone
	f.notifyLocked(room.ID)
	return nil
}

func (f *fakeChatRepo) GetRoomByID(ctx context.Context, id string) (*entity.ChatRoom, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	room, ok := f.rooms[id]
	if !ok {
		return nil, errors.NotFound("Chat room", nil)
	}
	clone := *room
	return &clone, nil
}

func (f *fakeChatRepo) GetRoomByVisitorID(ctx context.Context, visitorID string) (*entity.ChatRoom, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, room := range f.rooms {
		if room.VisitorID == visitorID {
			clone := *room
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Chat room", nil)
}

func (f *fakeChatRepo) ListRooms(ctx context.Context) ([]*entity.ChatRoom, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.roomsSnapshotLocked(), nil
}

func (f *fakeChatRepo) UpdateRoomFields(ctx context.Context, roomID string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	room, ok := f.rooms[roomID]
	if !ok {
		return errors.NotFound("Chat room", nil)
	}

	for field, value := range fields {
		if value == repository.ServerTimestamp {
			value = f.now()
		}
		switch field {
		case "lastMessage":
			room.LastMessage = value.(string)
		case "lastMessageTime":
			room.LastMessageAt = value.(time.Time)
		case "unreadCount":
			room.UnreadCount = value.(int)
		case "isActive":
			room.IsActive = value.(bool)
		case "visitorOnline":
			room.VisitorOnline = value.(bool)
		case "adminOnline":
			room.AdminOnline = value.(bool)
		case "typing":
			room.Typing = value.(string)
		}
	}

	f.notifyLocked(roomID)
	return nil
}

func (f *fakeChatRepo) CreateMessage(ctx context.Context, message *entity.ChatMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	room, ok := f.rooms[message.RoomID]
	if !ok {
		return errors.NotFound("Chat room", nil)
	}

	room.MessageSeq++
	message.ID = uuid.New().String()
	message.Seq = room.MessageSeq
	if message.CreatedAt.IsZero() {
		message.CreatedAt = f.now()
	}

	clone := *message
	f.messages[message.RoomID] = append(f.messages[message.RoomID], &clone)
	f.notifyLocked(message.RoomID)
	return nil
}

func (f *fakeChatRepo) ListMessages(ctx context.Context, roomID string) ([]*entity.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.messagesSnapshotLocked(roomID), nil
}

func (f *fakeChatRepo) WatchRooms(ctx context.Context) (<-chan []*entity.ChatRoom, error) {
	f.mu.Lock()
	ch := make(chan []*entity.ChatRoom, 16)
	ch <- f.roomsSnapshotLocked()
	f.roomsWatchers = append(f.roomsWatchers, ch)
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		for i, w := range f.roomsWatchers {
			if w == ch {
				f.roomsWatchers = append(f.roomsWatchers[:i], f.roomsWatchers[i+1:]...)
				close(ch)
				break
			}
		}
		f.mu.Unlock()
	}()

	return ch, nil
}

func (f *fakeChatRepo) WatchRoom(ctx context.Context, roomID string) (<-chan *entity.ChatRoom, error) {
	f.mu.Lock()
	ch := make(chan *entity.ChatRoom, 16)
	if room, ok := f.rooms[roomID]; ok {
		clone := *room
		ch <- &clone
	}
	f.roomWatchers[roomID] = append(f.roomWatchers[roomID], ch)
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		watchers := f.roomWatchers[roomID]
		for i, w := range watchers {
			if w == ch {
				f.roomWatchers[roomID] = append(watchers[:i], watchers[i+1:]...)
				close(ch)
				break
			}
		}
		f.mu.Unlock()
	}()

	return ch, nil
}

func (f *fakeChatRepo) WatchMessages(ctx context.Context, roomID string) (<-chan []*entity.ChatMessage, error) {
	f.mu.Lock()
	ch := make(chan []*entity.ChatMessage, 16)
	ch <- f.messagesSnapshotLocked(roomID)
	f.messageWatchers[roomID] = append(f.messageWatchers[roomID], ch)
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		watchers := f.messageWatchers[roomID]
		for i, w := range watchers {
			if w == ch {
				f.messageWatchers[roomID] = append(watchers[:i], watchers[i+1:]...)
				close(ch)
				break
			}
		}
		f.mu.Unlock()
	}()

	return ch, nil
}

func (f *fakeChatRepo) roomsSnapshotLocked() []*entity.ChatRoom {
	rooms := make([]*entity.ChatRoom, 0, len(f.rooms))
	for _, room := range f.rooms {
		clone := *room
		rooms = append(rooms, &clone)
	}
	return rooms
}

func (f *fakeChatRepo) messagesSnapshotLocked(roomID string) []*entity.ChatMessage {
	messages := make([]*entity.ChatMessage, 0, len(f.messages[roomID]))
	for _, m := range f.messages[roomID] {
		clone := *m
		messages = append(messages, &clone)
	}
	return messages
}

func (f *fakeChatRepo) notifyLocked(roomID string) {
	roomsSnapshot := f.roomsSnapshotLocked()
	for _, ch := range f.roomsWatchers {
		select {
		case ch <- roomsSnapshot:
		default:
		}
	}

	if room, ok := f.rooms[roomID]; ok {
		for _, ch := range f.roomWatchers[roomID] {
			clone := *room
			select {
			case ch <- &clone:
			default:
			}
		}
	}

	messagesSnapshot := f.messagesSnapshotLocked(roomID)
	for _, ch := range f.messageWatchers[roomID] {
		select {
		case ch <- messagesSnapshot:
		default:
		}
	}
}

// fakeAuthProvider stands in for the identity backend.
type fakeAuthProvider struct {
	mu    sync.Mutex
	users map[string]string // uid -> email
}

func newFakeAuthProvider() *fakeAuthProvider {
	return &fakeAuthProvider{users: make(map[string]string)}
}

func (f *fakeAuthProvider) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	uid := uuid.New().String()
	f.users[uid] = email
	return uid, nil
}

func (f *fakeAuthProvider) GetUserByEmail(ctx context.Context, email string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for uid, userEmail := range f.users {
		if userEmail == email {
			return uid, nil
		}
	}
	return "", errors.NotFound("User", nil)
}

func (f *fakeAuthProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[token]; ok {
		return token, nil
	}
	return "", errors.Unauthorized("Invalid or expired token", nil)
}

func (f *fakeAuthProvider) GenerateToken(ctx context.Context, uid string) (string, error) {
	return "custom-token-" + uid, nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

// fakeBlogRepo is an in-memory BlogRepository.
type fakeBlogRepo struct {
	mu    sync.Mutex
	posts map[string]*entity.BlogPost
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: make(map[string]*entity.BlogPost)}
}

func (f *fakeBlogRepo) Create(ctx context.Context, post *entity.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	clone := *post
	f.posts[post.ID] = &clone
	return nil
}

func (f *fakeBlogRepo) GetByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[id]
	if !ok {
		return nil, errors.NotFound("Blog post", nil)
	}
	clone := *post
	return &clone, nil
}

func (f *fakeBlogRepo) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, post := range f.posts {
		if post.Slug == slug {
			clone := *post
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Blog post", nil)
}

func (f *fakeBlogRepo) List(ctx context.Context) ([]*entity.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	posts := make([]*entity.BlogPost, 0, len(f.posts))
	for _, post := range f.posts {
		clone := *post
		posts = append(posts, &clone)
	}
	return posts, nil
}

func (f *fakeBlogRepo) Update(ctx context.Context, post *entity.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.posts[post.ID]; !ok {
		return errors.NotFound("Blog post", nil)
	}
	clone := *post
	f.posts[post.ID] = &clone
	return nil
}

func (f *fakeBlogRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.posts[id]; !ok {
		return errors.NotFound("Blog post", nil)
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeBlogRepo) IncrementViews(ctx context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[id]
	if !ok {
		return 0, errors.NotFound("Blog post", nil)
	}
	post.Views++
	return post.Views, nil
}

func (f *fakeBlogRepo) SetLiked(ctx context.Context, id, userID string, liked bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[id]
	if !ok {
		return errors.NotFound("Blog post", nil)
	}

	filtered := post.LikedBy[:0]
	for _, existing := range post.LikedBy {
		if existing != userID {
			filtered = append(filtered, existing)
		}
	}
	post.LikedBy = filtered
	if liked {
		post.LikedBy = append(post.LikedBy, userID)
	}
	return nil
}

// fakeProjectRepo is an in-memory ProjectRepository.
type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[string]*entity.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*entity.Project)}
}

func (f *fakeProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	clone := *project
	f.projects[project.ID] = &clone
	return nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	project, ok := f.projects[id]
	if !ok {
		return nil, errors.NotFound("Project", nil)
	}
	clone := *project
	return &clone, nil
}

func (f *fakeProjectRepo) List(ctx context.Context) ([]*entity.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	projects := make([]*entity.Project, 0, len(f.projects))
	for _, project := range f.projects {
		clone := *project
		projects = append(projects, &clone)
	}
	return projects, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.projects[project.ID]; !ok {
		return errors.NotFound("Project", nil)
	}
	clone := *project
	f.projects[project.ID] = &clone
	return nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.projects[id]; !ok {
		return errors.NotFound("Project", nil)
	}
	delete(f.projects, id)
	return nil
}
