package service

// 本文件提供业务层测试使用的内存版仓储与推理客户端替身。

import (
	"context"
	"os"
	"testing"
	"time"

	"gorm.io/gorm"

	"campus-bot-go/internal/model"
	"campus-bot-go/pkg/log"
)

func TestMain(m *testing.M) {
	log.Init("error", "console", "")
	os.Exit(m.Run())
}

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	if _, ok := f.users[user.CollegeID]; ok {
		return gorm.ErrDuplicatedKey
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.CollegeID] = user
	return nil
}

func (f *fakeUserRepo) FindByCollegeID(collegeID string) (*model.User, error) {
	user, ok := f.users[collegeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

type fakeModRepo struct {
	mods   map[string]*model.Moderator
	nextID uint
}

func newFakeModRepo() *fakeModRepo {
	return &fakeModRepo{mods: make(map[string]*model.Moderator), nextID: 1}
}

func (f *fakeModRepo) Create(mod *model.Moderator) error {
	if _, ok := f.mods[mod.ModID]; ok {
		return gorm.ErrDuplicatedKey
	}
	mod.ID = f.nextID
	f.nextID++
	f.mods[mod.ModID] = mod
	return nil
}

func (f *fakeModRepo) FindByModID(modID string) (*model.Moderator, error) {
	mod, ok := f.mods[modID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return mod, nil
}

func (f *fakeModRepo) Count() (int64, error) {
	return int64(len(f.mods)), nil
}

type deletedRef struct {
	kind model.ReferenceKind
	id   uint
}

type fakeRefRepo struct {
	snap    model.CampusSnapshot
	deleted []deletedRef
}

func (f *fakeRefRepo) Snapshot() (*model.CampusSnapshot, error) {
	snap := f.snap
	return &snap, nil
}

func (f *fakeRefRepo) CreateSchedule(entry *model.ScheduleEntry) error {
	f.snap.Schedule = append(f.snap.Schedule, *entry)
	return nil
}

func (f *fakeRefRepo) CreateRestaurant(entry *model.RestaurantEntry) error {
	f.snap.Restaurants = append(f.snap.Restaurants, *entry)
	return nil
}

func (f *fakeRefRepo) CreateHostel(entry *model.HostelEntry) error {
	f.snap.Hostels = append(f.snap.Hostels, *entry)
	return nil
}

func (f *fakeRefRepo) CreateGym(entry *model.GymEntry) error {
	f.snap.Gyms = append(f.snap.Gyms, *entry)
	return nil
}

func (f *fakeRefRepo) Delete(kind model.ReferenceKind, id uint) error {
	f.deleted = append(f.deleted, deletedRef{kind: kind, id: id})
	return nil
}

func (f *fakeRefRepo) ListSchedule() ([]model.ScheduleEntry, error) {
	return f.snap.Schedule, nil
}

func (f *fakeRefRepo) ListRestaurants() ([]model.RestaurantEntry, error) {
	return f.snap.Restaurants, nil
}

func (f *fakeRefRepo) ListHostels() ([]model.HostelEntry, error) {
	return f.snap.Hostels, nil
}

func (f *fakeRefRepo) ListGyms() ([]model.GymEntry, error) {
	return f.snap.Gyms, nil
}

type fakeChatLogRepo struct {
	logs   []model.ChatLog
	nextID uint
}

func (f *fakeChatLogRepo) Create(entry *model.ChatLog) error {
	f.nextID++
	entry.ID = f.nextID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	f.logs = append(f.logs, *entry)
	return nil
}

func (f *fakeChatLogRepo) FindByUserAsc(userID uint) ([]model.ChatLog, error) {
	var result []model.ChatLog
	for _, entry := range f.logs {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (f *fakeChatLogRepo) CountTotal() (int64, error) {
	return int64(len(f.logs)), nil
}

func (f *fakeChatLogRepo) CountActiveUsers() (int64, error) {
	seen := make(map[uint]struct{})
	for _, entry := range f.logs {
		seen[entry.UserID] = struct{}{}
	}
	return int64(len(seen)), nil
}

func (f *fakeChatLogRepo) TopQuestions(limit int) ([]model.QuestionStat, error) {
	counts := make(map[string]int64)
	for _, entry := range f.logs {
		counts[entry.Question]++
	}
	var stats []model.QuestionStat
	for question, freq := range counts {
		stats = append(stats, model.QuestionStat{Question: question, Freq: freq})
	}
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}

func (f *fakeChatLogRepo) TopUsers(limit int) ([]model.UserChatStat, error) {
	return nil, nil
}

func (f *fakeChatLogRepo) DailyCounts(days int) ([]model.DailyStat, error) {
	return nil, nil
}

type fakeLLMClient struct {
	answer  string
	err     error
	prompts []string
}

func (f *fakeLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}
