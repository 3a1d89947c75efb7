package bookingfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Формат файла: 8 колонок, разделенных запятой, с заголовком.
// Пустая строка означает "не задано" для bookingId и amount.
// Колонки дополняются пробелами до фиксированной ширины при записи,
// при чтении каждое поле обрезается.
const (
	headerPrefix = "bookingId"
	rowFormat    = "%-10s, %-20s, %-10s, %-15s, %-10s, %-15s, %-15s, %-15s\n"
	fieldCount   = 8
)

// Repository файловый адаптер персистентности журнала бронирований
type Repository struct {
	path string
}

// NewRepository создает адаптер для указанного файла
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Path возвращает путь к файлу бронирований
func (r *Repository) Path() string {
	return r.path
}

// Save записывает все бронирования в файл, перезаписывая его целиком
func (r *Repository) Save(bookings []*domain.Booking) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("%w: Save - create %s: %v", ErrOpenFile, r.path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	_, err = fmt.Fprintf(w, rowFormat,
		"bookingId", "username", "slotId", "status", "amount",
		"creationTime", "entryTime", "exitTime")
	if err != nil {
		return fmt.Errorf("%w: Save - write header: %v", ErrWriteFile, err)
	}

	for _, b := range bookings {
		if b == nil {
			continue
		}

		idStr := ""
		if b.ID != 0 {
			idStr = strconv.Itoa(b.ID)
		}
		amountStr := ""
		if b.Amount != nil {
			amountStr = strconv.FormatFloat(*b.Amount, 'f', -1, 64)
		}

		_, err = fmt.Fprintf(w, rowFormat,
			idStr,
			b.Username,
			strconv.Itoa(b.SlotID),
			string(b.Status),
			amountStr,
			strconv.FormatInt(b.CreationTime, 10),
			strconv.FormatInt(b.EntryTime, 10),
			strconv.FormatInt(b.ExitTime, 10),
		)
		if err != nil {
			return fmt.Errorf("%w: Save - write row for booking id=%d: %v", ErrWriteFile, b.ID, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: Save - flush: %v", ErrWriteFile, err)
	}

	return nil
}

// Load читает бронирования из файла.
// Отсутствующий файл создается пустым, результат - ноль записей.
// Некорректные строки (неверное число колонок, непарсящийся id или
// slotId) молча пропускаются; непарсящийся amount деградирует до
// "не задано", непарсящиеся таймстемпы - до нуля.
func (r *Repository) Load() ([]*domain.Booking, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			created, createErr := os.Create(r.path)
			if createErr != nil {
				return nil, fmt.Errorf("%w: Load - create %s: %v", ErrOpenFile, r.path, createErr)
			}
			created.Close()
			return []*domain.Booking{}, nil
		}
		return nil, fmt.Errorf("%w: Load - open %s: %v", ErrOpenFile, r.path, err)
	}
	defer f.Close()

	loaded := make([]*domain.Booking, 0, 32)

	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()

		if first {
			first = false
			if strings.HasPrefix(line, headerPrefix) {
				continue
			}
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		b, ok := parseRow(line)
		if !ok {
			continue
		}
		loaded = append(loaded, b)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: Load - scan %s: %v", ErrReadFile, r.path, err)
	}

	return loaded, nil
}

// parseRow разбирает одну строку файла в бронирование
func parseRow(line string) (*domain.Booking, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < fieldCount {
		return nil, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	b := &domain.Booking{}

	if fields[0] != "" {
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, false
		}
		b.ID = id
	}

	b.Username = fields[1]

	slotID, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, false
	}
	b.SlotID = slotID

	b.Status = domain.BookingStatus(fields[3])

	if fields[4] != "" {
		if amount, err := strconv.ParseFloat(fields[4], 64); err == nil {
			b.Amount = &amount
		}
	}

	b.CreationTime = parseMillis(fields[5])
	b.EntryTime = parseMillis(fields[6])
	b.ExitTime = parseMillis(fields[7])

	return b, true
}

func parseMillis(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
