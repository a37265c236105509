package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/metrics"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
)

// CommentService defines the interface for threaded comment business logic.
// Comments form a forest per board: roots have no parent, replies reference
// their parent comment and may nest without a depth limit.
type CommentService interface {
	CreateComment(ctx context.Context, boardID, authorID int64, req *dto.CommentCreateRequest) (*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, commentID int64, req *dto.CommentUpdateRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID int64) error
	GetCommentsByBoard(ctx context.Context, boardID int64) ([]dto.CommentResponse, error)
	CountCommentsByBoard(ctx context.Context, boardID int64) (int64, error)
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	boardRepo   repository.BoardRepository
	userRepo    repository.UserRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	boardRepo repository.BoardRepository,
	userRepo repository.UserRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		boardRepo:   boardRepo,
		userRepo:    userRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateComment creates a root comment or a reply under parentId.
// The parent is not required to belong to the same board; callers passing a
// foreign parent get a structurally valid but cross-board reply.
func (s *commentServiceImpl) CreateComment(ctx context.Context, boardID, authorID int64, req *dto.CommentCreateRequest) (*dto.CommentResponse, error) {
	// 게시글 조회
	_, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	// 작성자 조회
	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Author not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch author", err.Error())
	}

	// 부모 댓글 조회 (대댓글인 경우)
	if req.ParentID != nil {
		_, err := s.commentRepo.FindByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "Parent comment not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch parent comment", err.Error())
		}
	}

	if strings.TrimSpace(req.Content) == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Content must not be blank", "")
	}

	comment := &domain.Comment{
		BoardID:  boardID,
		AuthorID: author.ID,
		Content:  req.Content,
		ParentID: req.ParentID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}

	comment.Author = *author
	return s.toCommentResponse(comment, nil), nil
}

// UpdateComment replaces a comment's content. Structure (board, parent) is
// immutable; only content edits advance updatedAt.
func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID int64, req *dto.CommentUpdateRequest) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}

	comment.Content = req.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update comment", err.Error())
	}

	return s.toCommentResponse(comment, nil), nil
}

// DeleteComment removes a comment and its entire reply subtree.
// Descendant ids are collected breadth first over the parent index, then the
// whole set is removed in one batch statement.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID int64) error {
	_, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}

	toDelete, err := s.collectSubtreeIDs(ctx, commentID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to collect comment subtree", err.Error())
	}

	if err := s.commentRepo.DeleteBatch(ctx, toDelete); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comments", err.Error())
	}

	if s.metrics != nil {
		s.metrics.AddCommentsDeleted(len(toDelete))
	}
	s.logger.Info("Comment subtree deleted",
		zap.Int64("comment_id", commentID),
		zap.Int("deleted_count", len(toDelete)))
	return nil
}

// GetCommentsByBoard returns the board's comment forest: root comments in
// createdAt order, each carrying its fully nested replies.
func (s *commentServiceImpl) GetCommentsByBoard(ctx context.Context, boardID int64) ([]dto.CommentResponse, error) {
	_, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	comments, err := s.commentRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}

	return s.buildCommentForest(comments), nil
}

// CountCommentsByBoard returns the flat comment count across all depths
func (s *commentServiceImpl) CountCommentsByBoard(ctx context.Context, boardID int64) (int64, error) {
	count, err := s.commentRepo.CountByBoardID(ctx, boardID)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}
	return count, nil
}

// collectSubtreeIDs walks the parent index level by level and returns the
// given comment's id together with every descendant id.
func (s *commentServiceImpl) collectSubtreeIDs(ctx context.Context, rootID int64) ([]int64, error) {
	ids := []int64{rootID}
	frontier := []int64{rootID}

	for len(frontier) > 0 {
		children, err := s.commentRepo.FindIDsByParentIDs(ctx, frontier)
		if err != nil {
			return nil, err
		}
		ids = append(ids, children...)
		frontier = children
	}
	return ids, nil
}

// buildCommentForest assembles the flat, ordered comment list into a forest.
// The input is ordered by createdAt then id, so both root order and child
// order within a parent inherit that ordering.
func (s *commentServiceImpl) buildCommentForest(comments []*domain.Comment) []dto.CommentResponse {
	nodes := make(map[int64]*dto.CommentResponse, len(comments))
	for _, c := range comments {
		nodes[c.ID] = s.toCommentResponse(c, nil)
	}

	// 입력이 createdAt, id 순으로 정렬되어 있으므로 자식 목록도 그 순서를 따른다.
	// A reply whose parent lives on another board has no anchor in this
	// forest and is omitted.
	childIDs := make(map[int64][]int64, len(comments))
	for _, c := range comments {
		if c.ParentID == nil {
			continue
		}
		if _, ok := nodes[*c.ParentID]; ok {
			childIDs[*c.ParentID] = append(childIDs[*c.ParentID], c.ID)
		}
	}

	var attach func(id int64) dto.CommentResponse
	attach = func(id int64) dto.CommentResponse {
		node := *nodes[id]
		node.Children = make([]dto.CommentResponse, 0, len(childIDs[id]))
		for _, childID := range childIDs[id] {
			node.Children = append(node.Children, attach(childID))
		}
		return node
	}

	roots := make([]dto.CommentResponse, 0)
	for _, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, attach(c.ID))
		}
	}
	return roots
}

// toCommentResponse converts domain.Comment to dto.CommentResponse
func (s *commentServiceImpl) toCommentResponse(comment *domain.Comment, children []dto.CommentResponse) *dto.CommentResponse {
	if children == nil {
		children = make([]dto.CommentResponse, 0)
	}
	return &dto.CommentResponse{
		ID:             comment.ID,
		BoardID:        comment.BoardID,
		AuthorID:       comment.AuthorID,
		AuthorNickname: comment.Author.Nickname,
		Content:        comment.Content,
		ParentID:       comment.ParentID,
		CreatedAt:      comment.CreatedAt,
		UpdatedAt:      comment.UpdatedAt,
		Children:       children,
	}
}
