package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/wellnest/internal/models"
	"gorm.io/gorm"
)

func intPtr(value int) *int {
	return &value
}

func fixedClock(value time.Time) func() time.Time {
	return func() time.Time {
		return value
	}
}

type userRepositoryStub struct {
	users     []models.User
	createErr error
}

func (stub *userRepositoryStub) ExistsByNormalizedEmail(email string) (bool, error) {
	for _, user := range stub.users {
		if strings.ToLower(strings.TrimSpace(user.Email)) == email {
			return true, nil
		}
	}
	return false, nil
}

func (stub *userRepositoryStub) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range stub.users {
		if strings.ToLower(strings.TrimSpace(user.Email)) == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *userRepositoryStub) FindByID(userID uint) (models.User, error) {
	for _, user := range stub.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *userRepositoryStub) Create(user *models.User) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	user.ID = uint(len(stub.users) + 1)
	stub.users = append(stub.users, *user)
	return nil
}

type profileRepositoryStub struct {
	profiles map[uint]models.Profile
	upserts  int
}

func newProfileRepositoryStub() *profileRepositoryStub {
	return &profileRepositoryStub{profiles: make(map[uint]models.Profile)}
}

func (stub *profileRepositoryStub) FindByUser(userID uint) (models.Profile, bool, error) {
	profile, ok := stub.profiles[userID]
	return profile, ok, nil
}

func (stub *profileRepositoryStub) Upsert(profile *models.Profile) error {
	stub.upserts++
	stub.profiles[profile.UserID] = *profile
	return nil
}

type vitalsRepositoryStub struct {
	logs   []models.VitalsLog
	latest map[uint]models.LatestVitals
	nextID uint
}

func newVitalsRepositoryStub() *vitalsRepositoryStub {
	return &vitalsRepositoryStub{latest: make(map[uint]models.LatestVitals), nextID: 1}
}

func (stub *vitalsRepositoryStub) Record(entry *models.VitalsLog) error {
	entry.ID = stub.nextID
	stub.nextID++
	stub.logs = append(stub.logs, *entry)
	stub.latest[entry.UserID] = models.LatestVitals{
		UserID:     entry.UserID,
		HeartRate:  entry.HeartRate,
		Systolic:   entry.Systolic,
		Diastolic:  entry.Diastolic,
		BloodSugar: entry.BloodSugar,
		RecordedAt: entry.RecordedAt,
	}
	return nil
}

func (stub *vitalsRepositoryStub) userLogs(userID uint) []models.VitalsLog {
	logs := make([]models.VitalsLog, 0)
	for _, entry := range stub.logs {
		if entry.UserID == userID {
			logs = append(logs, entry)
		}
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].RecordedAt.Before(logs[j].RecordedAt)
	})
	return logs
}

func (stub *vitalsRepositoryStub) ListRecent(userID uint, limit int) ([]models.VitalsLog, error) {
	logs := stub.userLogs(userID)
	recent := make([]models.VitalsLog, 0, limit)
	for index := len(logs) - 1; index >= 0 && len(recent) < limit; index-- {
		recent = append(recent, logs[index])
	}
	return recent, nil
}

func (stub *vitalsRepositoryStub) ListSince(userID uint, since time.Time) ([]models.VitalsLog, error) {
	logs := make([]models.VitalsLog, 0)
	for _, entry := range stub.userLogs(userID) {
		if !entry.RecordedAt.Before(since) {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}

func (stub *vitalsRepositoryStub) FindNewest(userID uint) (models.VitalsLog, bool, error) {
	logs := stub.userLogs(userID)
	if len(logs) == 0 {
		return models.VitalsLog{}, false, nil
	}
	return logs[len(logs)-1], true, nil
}

func (stub *vitalsRepositoryStub) FindLatest(userID uint) (models.LatestVitals, bool, error) {
	latest, ok := stub.latest[userID]
	return latest, ok, nil
}

type thresholdRepositoryStub struct {
	rows map[uint]models.AlertThreshold
}

func newThresholdRepositoryStub() *thresholdRepositoryStub {
	return &thresholdRepositoryStub{rows: make(map[uint]models.AlertThreshold)}
}

func (stub *thresholdRepositoryStub) FindByUser(userID uint) (models.AlertThreshold, bool, error) {
	row, ok := stub.rows[userID]
	return row, ok, nil
}

func (stub *thresholdRepositoryStub) Upsert(threshold *models.AlertThreshold) error {
	stub.rows[threshold.UserID] = *threshold
	return nil
}

type alertRepositoryStub struct {
	alerts    []models.Alert
	createErr error
}

func (stub *alertRepositoryStub) Create(alert *models.Alert) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	alert.ID = uint(len(stub.alerts) + 1)
	stub.alerts = append(stub.alerts, *alert)
	return nil
}

func (stub *alertRepositoryStub) ListByReadState(userID uint, read bool, limit int) ([]models.Alert, error) {
	matched := make([]models.Alert, 0)
	for index := len(stub.alerts) - 1; index >= 0 && len(matched) < limit; index-- {
		alert := stub.alerts[index]
		if alert.UserID == userID && alert.Read == read {
			matched = append(matched, alert)
		}
	}
	return matched, nil
}

func (stub *alertRepositoryStub) MarkRead(userID uint, publicID string, readAt time.Time) (bool, error) {
	for index := range stub.alerts {
		if stub.alerts[index].UserID == userID && stub.alerts[index].PublicID == publicID {
			stub.alerts[index].Read = true
			stub.alerts[index].ReadAt = &readAt
			return true, nil
		}
	}
	return false, nil
}

type medicationRepositoryStub struct {
	medications []models.Medication
}

func (stub *medicationRepositoryStub) Create(medication *models.Medication) error {
	medication.ID = uint(len(stub.medications) + 1)
	stub.medications = append(stub.medications, *medication)
	return nil
}

func (stub *medicationRepositoryStub) ListByUser(userID uint) ([]models.Medication, error) {
	matched := make([]models.Medication, 0)
	for _, medication := range stub.medications {
		if medication.UserID == userID {
			matched = append(matched, medication)
		}
	}
	return matched, nil
}

func (stub *medicationRepositoryStub) DeleteForUser(userID uint, medicationID uint) (bool, error) {
	for index, medication := range stub.medications {
		if medication.UserID == userID && medication.ID == medicationID {
			stub.medications = append(stub.medications[:index], stub.medications[index+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type recordedEvents struct {
	registered  int
	vitalsCount int
	riskLevels  []string
	alerts      []string
}

func (recorder *recordedEvents) UserRegistered() {
	recorder.registered++
}

func (recorder *recordedEvents) VitalsLogged() {
	recorder.vitalsCount++
}

func (recorder *recordedEvents) RiskEvaluated(level string) {
	recorder.riskLevels = append(recorder.riskLevels, level)
}

func (recorder *recordedEvents) AlertRaised(alertType string, severity string) {
	recorder.alerts = append(recorder.alerts, alertType+":"+severity)
}

var errStubFailure = errors.New("stub failure")
