package metrics

// IncrementBoardCreated increments the board creation counter for a board type
func (m *Metrics) IncrementBoardCreated(boardType string) {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.WithLabelValues(boardType).Inc()
	})
}

// IncrementCommentCreated increments the comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// AddCommentsDeleted adds the number of comments removed by one subtree delete
func (m *Metrics) AddCommentsDeleted(count int) {
	m.safeExecute("AddCommentsDeleted", func() {
		m.CommentsDeletedTotal.Add(float64(count))
	})
}

// IncrementLikeToggled increments the like toggle counter.
// action is "liked" or "unliked".
func (m *Metrics) IncrementLikeToggled(action string) {
	m.safeExecute("IncrementLikeToggled", func() {
		m.LikeToggledTotal.WithLabelValues(action).Inc()
	})
}

// IncrementUserCreated increments the user registration counter
func (m *Metrics) IncrementUserCreated() {
	m.safeExecute("IncrementUserCreated", func() {
		m.UserCreatedTotal.Inc()
	})
}

// IncrementPermissionDenied increments the access guard rejection counter.
// operation is "read" or "write".
func (m *Metrics) IncrementPermissionDenied(operation string) {
	m.safeExecute("IncrementPermissionDenied", func() {
		m.PermissionDeniedTotal.WithLabelValues(operation).Inc()
	})
}

// IncrementCacheRequest increments the cache lookup counter.
// result is "hit" or "miss".
func (m *Metrics) IncrementCacheRequest(cache, result string) {
	m.safeExecute("IncrementCacheRequest", func() {
		m.CacheRequestsTotal.WithLabelValues(cache, result).Inc()
	})
}

// SetBoardsTotal sets the board count gauge for one board type
func (m *Metrics) SetBoardsTotal(boardType string, count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.WithLabelValues(boardType).Set(float64(count))
	})
}

// SetCommentsTotal sets the total comments gauge
func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}

// SetLikesTotal sets the total likes gauge
func (m *Metrics) SetLikesTotal(count int64) {
	m.safeExecute("SetLikesTotal", func() {
		m.LikesTotal.Set(float64(count))
	})
}

// SetUsersTotal sets the total users gauge
func (m *Metrics) SetUsersTotal(count int64) {
	m.safeExecute("SetUsersTotal", func() {
		m.UsersTotal.Set(float64(count))
	})
}
