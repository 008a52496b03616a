package client

// LastPage номер последней страницы: max(1, ceil(total/limit))
func LastPage(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

// PageAfterDelete страница, которую нужно загрузить после удаления записи
// со страницы deletedPage, если до удаления записей было totalBefore
func PageAfterDelete(deletedPage, totalBefore, limit int) int {
	totalAfter := totalBefore - 1
	if totalAfter < 0 {
		totalAfter = 0
	}

	last := LastPage(totalAfter, limit)
	if deletedPage > last {
		return last
	}
	if deletedPage < 1 {
		return 1
	}
	return deletedPage
}
