package service

import (
	"errors"
	"time"

	"staff-planner/internal/models"
	"staff-planner/internal/repository"
	"staff-planner/pkg/weekday"

	"github.com/sirupsen/logrus"
)

// LeaveService ведет учет отпускных дней и часов восстановления:
// подача заявок, утверждение, отклонение и ручные корректировки.
//
// Баланс списывается только при утверждении. Подача лишь проверяет
// остаток, ничего не резервируя, поэтому несколько ожидающих заявок
// могут суммарно превышать остаток — утверждение перепроверяет баланс
// атомарно и не дает уйти в перерасход.
type LeaveService struct {
	leaveRepo      repository.LeaveRequestRepository
	employeeRepo   repository.EmployeeRepository
	scheduleRepo   repository.WorkScheduleRepository
	adjustmentRepo repository.LeaveAdjustmentRepository
	storeRepo      repository.StoreRepository
	logger         *logrus.Logger
}

func NewLeaveService(
	leaveRepo repository.LeaveRequestRepository,
	employeeRepo repository.EmployeeRepository,
	scheduleRepo repository.WorkScheduleRepository,
	adjustmentRepo repository.LeaveAdjustmentRepository,
	storeRepo repository.StoreRepository,
) *LeaveService {
	return &LeaveService{
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		scheduleRepo:   scheduleRepo,
		adjustmentRepo: adjustmentRepo,
		storeRepo:      storeRepo,
		logger:         logrus.New(),
	}
}

// SubmitLeaveInput — данные новой заявки
type SubmitLeaveInput struct {
	StartDate     time.Time
	EndDate       time.Time
	Type          string
	Reason        string
	RecoveryHours float64
}

// CheckEligibility считает рабочие и календарные дни диапазона по графику
// сотрудника и возвращает текущий остаток. Ничего не меняет.
func (s *LeaveService) CheckEligibility(employeeID uint, start, end time.Time) (workingDays, totalDays, remaining int, err error) {
	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load employee")
		return 0, 0, 0, ErrServiceUnavailable
	}
	if employee == nil {
		return 0, 0, 0, ErrNotFound
	}

	entries, err := s.scheduleRepo.GetByEmployee(employeeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load schedule")
		return 0, 0, 0, ErrServiceUnavailable
	}

	workingDays, err = CountWorkingDays(entries, start, end)
	if err != nil {
		return 0, 0, 0, err
	}
	totalDays, err = TotalCalendarDays(start, end)
	if err != nil {
		return 0, 0, 0, err
	}

	return workingDays, totalDays, employee.Remaining(), nil
}

// Submit создает заявку в статусе pending. Для обычной заявки считает
// рабочие дни по графику сотрудника на момент подачи и проверяет остаток;
// баланс при этом не списывается.
func (s *LeaveService) Submit(employeeID uint, input SubmitLeaveInput) (*models.LeaveRequest, error) {
	switch input.Type {
	case models.RequestTypeVacation, models.RequestTypeSick,
		models.RequestTypePersonal, models.RequestTypeOther,
		models.RequestTypeRecoveryHours:
	default:
		return nil, newValidationError("неизвестный тип заявки: %s", input.Type)
	}

	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load employee")
		return nil, ErrServiceUnavailable
	}
	if employee == nil {
		return nil, ErrNotFound
	}

	request := &models.LeaveRequest{
		EmployeeID:   employeeID,
		EmployeeName: employee.Name,
		StoreID:      employee.StoreID,
		Type:         input.Type,
		Reason:       input.Reason,
		Status:       models.LeaveStatusPending,
	}

	if input.Type == models.RequestTypeRecoveryHours {
		if input.RecoveryHours <= 0 {
			return nil, newValidationError("некорректное количество часов")
		}
		request.StartDate = weekday.Truncate(input.StartDate)
		request.EndDate = weekday.Truncate(input.EndDate)
		request.RecoveryHoursRequested = input.RecoveryHours
	} else {
		if input.StartDate.IsZero() || input.EndDate.IsZero() {
			return nil, newValidationError("необходимо указать даты начала и окончания")
		}

		entries, err := s.scheduleRepo.GetByEmployee(employeeID)
		if err != nil {
			s.logger.WithError(err).Error("Failed to load schedule")
			return nil, ErrServiceUnavailable
		}

		days, err := CountWorkingDays(entries, input.StartDate, input.EndDate)
		if err != nil {
			return nil, err
		}

		if days > employee.Remaining() {
			return nil, &InsufficientBalanceError{
				Remaining: employee.Remaining(),
				Requested: days,
			}
		}

		request.StartDate = weekday.Truncate(input.StartDate)
		request.EndDate = weekday.Truncate(input.EndDate)
		request.CalculatedDays = days
	}

	if err := s.leaveRepo.Create(request); err != nil {
		s.logger.WithError(err).Error("Failed to create leave request")
		return nil, ErrServiceUnavailable
	}

	s.logger.WithFields(logrus.Fields{
		"request_id":  request.ID,
		"employee_id": employeeID,
		"type":        request.Type,
		"days":        request.CalculatedDays,
	}).Info("Leave request submitted")

	return request, nil
}

// Approve утверждает заявку. Дни пересчитываются по текущему графику
// сотрудника, проверка остатка и списание выполняются одной атомарной
// операцией: повторное утверждение и перерасход невозможны.
func (s *LeaveService) Approve(requestID, reviewerID uint, comment string) (*models.LeaveRequest, error) {
	request, err := s.leaveRepo.GetByID(requestID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load leave request")
		return nil, ErrServiceUnavailable
	}
	if request == nil {
		return nil, ErrNotFound
	}
	if !request.IsPending() {
		return nil, ErrAlreadyReviewed
	}

	employee, err := s.employeeRepo.GetByID(request.EmployeeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load employee")
		return nil, ErrServiceUnavailable
	}
	if employee == nil {
		return nil, ErrNotFound
	}

	if request.IsRecoveryHours() {
		err = s.leaveRepo.ApproveRecovery(requestID, request.EmployeeID,
			request.RecoveryHoursRequested, reviewerID, comment)
		if errors.Is(err, repository.ErrNotPending) {
			return nil, ErrAlreadyReviewed
		}
		if err != nil {
			s.logger.WithError(err).Error("Failed to approve recovery request")
			return nil, ErrServiceUnavailable
		}
	} else {
		entries, err := s.scheduleRepo.GetByEmployee(request.EmployeeID)
		if err != nil {
			s.logger.WithError(err).Error("Failed to load schedule")
			return nil, ErrServiceUnavailable
		}

		days, err := CountWorkingDays(entries, request.StartDate, request.EndDate)
		if err != nil {
			return nil, err
		}

		err = s.leaveRepo.ApproveDays(requestID, request.EmployeeID, days, reviewerID, comment)
		if errors.Is(err, repository.ErrNotPending) {
			return nil, ErrAlreadyReviewed
		}
		if errors.Is(err, repository.ErrBalanceExceeded) {
			return nil, &InsufficientBalanceError{
				Remaining: employee.Remaining(),
				Requested: days,
			}
		}
		if err != nil {
			s.logger.WithError(err).Error("Failed to approve leave request")
			return nil, ErrServiceUnavailable
		}
	}

	s.logger.WithFields(logrus.Fields{
		"request_id":  requestID,
		"reviewer_id": reviewerID,
	}).Info("Leave request approved")

	approved, err := s.leaveRepo.GetByID(requestID)
	if err != nil {
		return nil, ErrServiceUnavailable
	}
	return approved, nil
}

// Reject отклоняет заявку; комментарий обязателен, баланс не меняется
func (s *LeaveService) Reject(requestID, reviewerID uint, comment string) error {
	if isBlank(comment) {
		return newValidationError("для отклонения заявки необходим комментарий")
	}

	request, err := s.leaveRepo.GetByID(requestID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load leave request")
		return ErrServiceUnavailable
	}
	if request == nil {
		return ErrNotFound
	}
	if !request.IsPending() {
		return ErrAlreadyReviewed
	}

	err = s.leaveRepo.Reject(requestID, reviewerID, comment)
	if errors.Is(err, repository.ErrNotPending) {
		return ErrAlreadyReviewed
	}
	if err != nil {
		s.logger.WithError(err).Error("Failed to reject leave request")
		return ErrServiceUnavailable
	}

	s.logger.WithFields(logrus.Fields{
		"request_id":  requestID,
		"reviewer_id": reviewerID,
	}).Info("Leave request rejected")
	return nil
}

// Adjust применяет ручную корректировку баланса.
//
// Для leave_days величина трактуется как "дни, возвращаемые сотруднику":
// used_leave = max(0, used_leave - amount), то есть положительная величина
// УМЕНЬШАЕТ израсходованное. Соглашение о знаке инвертировано нарочно и
// унаследовано от существующих вызывающих — не "исправлять".
// Для recovery_hours величина прибавляется напрямую с нижней границей ноль.
//
// Строка аудита пишется по принципу fire-and-forget: её сбой логируется,
// но не откатывает уже примененную корректировку.
func (s *LeaveService) Adjust(employeeID uint, adjustmentType string, amount float64, reason string, actorID uint) (*models.Employee, error) {
	if adjustmentType != models.AdjustmentLeaveDays && adjustmentType != models.AdjustmentRecoveryHours {
		return nil, newValidationError("неизвестный тип корректировки: %s", adjustmentType)
	}
	if isBlank(reason) {
		return nil, newValidationError("необходимо указать причину корректировки")
	}

	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load employee")
		return nil, ErrServiceUnavailable
	}
	if employee == nil {
		return nil, ErrNotFound
	}

	switch adjustmentType {
	case models.AdjustmentLeaveDays:
		err = s.employeeRepo.AdjustUsedLeave(employeeID, amount)
	case models.AdjustmentRecoveryHours:
		err = s.employeeRepo.AddRecoveryHours(nil, employeeID, amount)
	}
	if err != nil {
		s.logger.WithError(err).Error("Failed to apply balance adjustment")
		return nil, ErrServiceUnavailable
	}

	audit := &models.LeaveAdjustment{
		EmployeeID:     employeeID,
		AdjustmentType: adjustmentType,
		Amount:         amount,
		Reason:         reason,
		AdjustedBy:     actorID,
	}
	if err := s.adjustmentRepo.Create(audit); err != nil {
		// Аудит не откатывает корректировку
		s.logger.WithError(err).WithField("employee_id", employeeID).
			Warn("Failed to write adjustment audit row")
	}

	updated, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, ErrServiceUnavailable
	}
	return updated, nil
}

// LeaveRow — заявка с именем магазина для отображения
type LeaveRow struct {
	models.LeaveRequest
	StoreName string `json:"store_name"`
}

// List возвращает заявки по фильтру с подставленным именем магазина
func (s *LeaveService) List(filter repository.LeaveListFilter) ([]LeaveRow, error) {
	requests, err := s.leaveRepo.List(filter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list leave requests")
		return nil, ErrServiceUnavailable
	}

	names, err := storeNameIndex(s.storeRepo)
	if err != nil {
		return nil, err
	}

	rows := make([]LeaveRow, 0, len(requests))
	for _, request := range requests {
		rows = append(rows, LeaveRow{
			LeaveRequest: request,
			StoreName:    storeName(names, request.StoreID),
		})
	}
	return rows, nil
}

// Adjustments возвращает историю корректировок сотрудника
func (s *LeaveService) Adjustments(employeeID uint) ([]models.LeaveAdjustment, error) {
	adjustments, err := s.adjustmentRepo.GetByEmployee(employeeID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list adjustments")
		return nil, ErrServiceUnavailable
	}
	return adjustments, nil
}
