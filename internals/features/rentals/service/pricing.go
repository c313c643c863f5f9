package service

import "time"

// DateLayout adalah format tanggal yang dipakai backend (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// TotalCost menghitung biaya sewa: harga bulanan × jumlah bulan.
// Nilai berwenang tetap dari server; ini hanya untuk tampilan.
func TotalCost(monthlyPrice int64, months int) int64 {
	return monthlyPrice * int64(months)
}

// EndDate menghitung tanggal selesai sewa dengan aritmetika bulan kalender
// (BUKAN kelipatan 30 hari), mengikuti penanganan tanggal server:
// 2024-01-15 + 6 bulan = 2024-07-15.
func EndDate(start time.Time, months int) time.Time {
	return start.AddDate(0, months, 0)
}

// ExtensionCost: biaya perpanjangan memakai rumus yang sama dengan harga
// bulanan transaksi berjalan.
func ExtensionCost(currentMonthlyPrice int64, additionalMonths int) int64 {
	return TotalCost(currentMonthlyPrice, additionalMonths)
}

// MinStartDate: tanggal mulai sewa paling cepat besok — tidak ada sewa
// mulai hari ini atau mundur.
func MinStartDate(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}
