package bookingfile

import "errors"

var (
	// ErrOpenFile возвращается, когда файл не удалось открыть или создать
	ErrOpenFile = errors.New("bookingfile.repository: failed to open bookings file")

	// ErrWriteFile возвращается при ошибке записи файла
	ErrWriteFile = errors.New("bookingfile.repository: failed to write bookings file")

	// ErrReadFile возвращается при ошибке чтения файла
	ErrReadFile = errors.New("bookingfile.repository: failed to read bookings file")
)
