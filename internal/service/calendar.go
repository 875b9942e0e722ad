package service

import (
	"strings"
	"time"

	"staff-planner/internal/models"
	"staff-planner/internal/repository"
	"staff-planner/pkg/weekday"

	"github.com/sirupsen/logrus"
)

// Палитра пастилок сотрудников в календарных видах
var employeeColors = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#EC4899", "#14B8A6", "#F97316", "#6366F1", "#84CC16",
}

// CalendarService строит календарные сетки: месяц магазина, неделя
// посещаемости и календарь команды.
type CalendarService struct {
	employeeRepo   repository.EmployeeRepository
	scheduleRepo   repository.WorkScheduleRepository
	attendanceRepo repository.AttendanceRepository
	leaveRepo      repository.LeaveRequestRepository
	storeRepo      repository.StoreRepository
	logger         *logrus.Logger
}

func NewCalendarService(
	employeeRepo repository.EmployeeRepository,
	scheduleRepo repository.WorkScheduleRepository,
	attendanceRepo repository.AttendanceRepository,
	leaveRepo repository.LeaveRequestRepository,
	storeRepo repository.StoreRepository,
) *CalendarService {
	return &CalendarService{
		employeeRepo:   employeeRepo,
		scheduleRepo:   scheduleRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		storeRepo:      storeRepo,
		logger:         logrus.New(),
	}
}

// DayEmployee — сотрудник в ячейке месячной сетки
type DayEmployee struct {
	EmployeeID uint   `json:"id"`
	Name       string `json:"name"`
	Initials   string `json:"initials"`
	Color      string `json:"color"`
	IsWorking  bool   `json:"is_working"`
}

// MonthScheduleDay — один день месячной сетки магазина
type MonthScheduleDay struct {
	Date      string        `json:"date"`
	Employees []DayEmployee `json:"employees"`
}

// MonthSchedule строит сетку месяца для магазина: по каждому дню — кто
// работает. Утвержденный отпуск имеет приоритет над графиком.
func (s *CalendarService) MonthSchedule(storeID uint, year, month int) ([]MonthScheduleDay, error) {
	if month < 1 || month > 12 {
		return nil, newValidationError("некорректный месяц: %d", month)
	}
	first, last := weekday.MonthBounds(year, month)

	employees, err := s.employeeRepo.GetByStore(storeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load store employees")
		return nil, ErrServiceUnavailable
	}
	if len(employees) == 0 {
		return []MonthScheduleDay{}, nil
	}

	ids := make([]uint, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}
	schedules, err := s.scheduleRepo.GetByEmployees(ids)
	if err != nil {
		return nil, ErrServiceUnavailable
	}

	leaves, err := s.leaveRepo.GetApprovedOverlappingAll(first, last, &storeID)
	if err != nil {
		return nil, ErrServiceUnavailable
	}

	grid := make([]MonthScheduleDay, 0, 31)
	for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
		day := MonthScheduleDay{
			Date:      date.Format("2006-01-02"),
			Employees: make([]DayEmployee, 0, len(employees)),
		}

		for i, emp := range employees {
			cell := DayEmployee{
				EmployeeID: emp.ID,
				Name:       emp.Name,
				Initials:   initials(emp.Name),
				Color:      employeeColors[i%len(employeeColors)],
			}

			if onLeave(leaves, emp.ID, date) {
				cell.IsWorking = false
			} else {
				cell.IsWorking = IsWorkingDay(schedules[emp.ID], date.Weekday())
			}
			day.Employees = append(day.Employees, cell)
		}

		grid = append(grid, day)
	}

	return grid, nil
}

// WeekDayCell — статус одного дня недели; Status пустой, если отметки нет
type WeekDayCell struct {
	Date          string `json:"date"`
	Status        string `json:"status,omitempty"`
	Justification string `json:"justification,omitempty"`
}

// NextLeaveInfo — ближайший предстоящий отпуск сотрудника
type NextLeaveInfo struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

// WeekEmployeeRow — строка недельной сетки посещаемости
type WeekEmployeeRow struct {
	EmployeeID uint           `json:"employee_id"`
	Name       string         `json:"name"`
	Position   string         `json:"position"`
	StoreID    *uint          `json:"store_id"`
	StoreName  string         `json:"store_name"`
	Days       []WeekDayCell  `json:"days"`
	NextLeave  *NextLeaveInfo `json:"next_leave,omitempty"`
}

// WeekAttendance строит сетку недели с понедельника monday: по каждому
// сотруднику семь ячеек (отпуск/присутствие/отсутствие/пусто) и ближайший
// предстоящий отпуск
func (s *CalendarService) WeekAttendance(monday time.Time, storeID *uint) ([]WeekEmployeeRow, error) {
	monday = weekday.Truncate(monday)
	sunday := monday.AddDate(0, 0, 6)

	employees, err := s.employeeRepo.GetEmployees(storeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load employees for week grid")
		return nil, ErrServiceUnavailable
	}

	storeNames, err := storeNameIndex(s.storeRepo)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.GetRange(monday, sunday, storeID)
	if err != nil {
		return nil, ErrServiceUnavailable
	}
	recordsByEmployee := make(map[uint]map[string]models.AttendanceRecord)
	for _, record := range records {
		date := record.Date.Format("2006-01-02")
		if recordsByEmployee[record.EmployeeID] == nil {
			recordsByEmployee[record.EmployeeID] = make(map[string]models.AttendanceRecord)
		}
		recordsByEmployee[record.EmployeeID][date] = record
	}

	leaves, err := s.leaveRepo.GetApprovedOverlappingAll(monday, sunday, storeID)
	if err != nil {
		return nil, ErrServiceUnavailable
	}

	upcoming, err := s.leaveRepo.GetApprovedStartingAfter(sunday)
	if err != nil {
		return nil, ErrServiceUnavailable
	}

	rows := make([]WeekEmployeeRow, 0, len(employees))
	for _, emp := range employees {
		row := WeekEmployeeRow{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Position:   emp.Position,
			StoreID:    emp.StoreID,
			StoreName:  storeName(storeNames, emp.StoreID),
			Days:       make([]WeekDayCell, 0, 7),
		}

		for i := 0; i < 7; i++ {
			date := monday.AddDate(0, 0, i)
			dateStr := date.Format("2006-01-02")
			cell := WeekDayCell{Date: dateStr}

			if onLeave(leaves, emp.ID, date) {
				cell.Status = "leave"
			} else if record, ok := recordsByEmployee[emp.ID][dateStr]; ok {
				cell.Status = record.Status
				cell.Justification = record.Justification
			}
			row.Days = append(row.Days, cell)
		}

		for _, leave := range upcoming {
			if leave.EmployeeID != emp.ID || leave.IsRecoveryHours() {
				continue
			}
			days, err := TotalCalendarDays(leave.StartDate, leave.EndDate)
			if err != nil {
				continue
			}
			row.NextLeave = &NextLeaveInfo{
				StartDate: leave.StartDate.Format("2006-01-02"),
				EndDate:   leave.EndDate.Format("2006-01-02"),
				Days:      days,
			}
			break
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// TeamDay — отметка дня в календаре команды
type TeamDay struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// TeamMember — коллега по магазину с его отметками за месяц
type TeamMember struct {
	EmployeeID uint      `json:"id"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	Attendance []TeamDay `json:"attendance"`
}

// TeamCalendar строит календарь магазина глазами сотрудника: все коллеги
// по его магазину с отметками отпуска и посещаемости за месяц
func (s *CalendarService) TeamCalendar(employeeID uint, year, month int) ([]TeamMember, error) {
	if month < 1 || month > 12 {
		return nil, newValidationError("некорректный месяц: %d", month)
	}

	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load employee")
		return nil, ErrServiceUnavailable
	}
	if employee == nil {
		return nil, ErrNotFound
	}
	if employee.StoreID == nil {
		return []TeamMember{}, nil
	}

	first, last := weekday.MonthBounds(year, month)

	teammates, err := s.employeeRepo.GetByStore(*employee.StoreID)
	if err != nil {
		return nil, ErrServiceUnavailable
	}

	records, err := s.attendanceRepo.GetRange(first, last, employee.StoreID)
	if err != nil {
		return nil, ErrServiceUnavailable
	}
	recordsByEmployee := make(map[uint]map[string]string)
	for _, record := range records {
		if recordsByEmployee[record.EmployeeID] == nil {
			recordsByEmployee[record.EmployeeID] = make(map[string]string)
		}
		recordsByEmployee[record.EmployeeID][record.Date.Format("2006-01-02")] = record.Status
	}

	leaves, err := s.leaveRepo.GetApprovedOverlappingAll(first, last, employee.StoreID)
	if err != nil {
		return nil, ErrServiceUnavailable
	}

	team := make([]TeamMember, 0, len(teammates))
	for _, mate := range teammates {
		member := TeamMember{
			EmployeeID: mate.ID,
			Name:       mate.Name,
			Position:   mate.Position,
			Attendance: []TeamDay{},
		}

		for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
			dateStr := date.Format("2006-01-02")
			if onLeave(leaves, mate.ID, date) {
				member.Attendance = append(member.Attendance, TeamDay{Date: dateStr, Status: "leave"})
			} else if status, ok := recordsByEmployee[mate.ID][dateStr]; ok {
				member.Attendance = append(member.Attendance, TeamDay{Date: dateStr, Status: status})
			}
		}

		team = append(team, member)
	}

	return team, nil
}

// onLeave проверяет, покрыт ли день утвержденным отпуском сотрудника
func onLeave(leaves []models.LeaveRequest, employeeID uint, date time.Time) bool {
	for _, leave := range leaves {
		if leave.EmployeeID == employeeID && !leave.IsRecoveryHours() && leave.Covers(date) {
			return true
		}
	}
	return false
}

// initials строит инициалы для пастилки в календаре
func initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) >= 2 {
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[len(parts)-1]))
	}
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// storeNameIndex строит индекс имен магазинов для подстановки в строки
func storeNameIndex(storeRepo repository.StoreRepository) (map[uint]string, error) {
	stores, err := storeRepo.GetAll()
	if err != nil {
		return nil, ErrServiceUnavailable
	}
	names := make(map[uint]string, len(stores))
	for _, store := range stores {
		names[store.ID] = store.Name
	}
	return names, nil
}

func storeName(names map[uint]string, storeID *uint) string {
	if storeID == nil {
		return "N/A"
	}
	if name, ok := names[*storeID]; ok {
		return name
	}
	return "N/A"
}
