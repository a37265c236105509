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
	"community-board-api/internal/pagination"
	"community-board-api/internal/permission"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
)

// BoardService defines the interface for board business logic
type BoardService interface {
	CreateBoard(ctx context.Context, req *dto.BoardCreateRequest) (*dto.BoardResponse, error)
	GetBoard(ctx context.Context, boardID int64) (*dto.BoardResponse, error)
	GetAllBoards(ctx context.Context) ([]dto.BoardResponse, error)
	GetBoardsByType(ctx context.Context, boardType domain.BoardType) ([]dto.BoardResponse, error)
	GetBoardsPaged(ctx context.Context, page, size int) (*dto.BoardPageResponse, error)
	GetBoardsPagedForUser(ctx context.Context, userID int64, page, size int) (*dto.BoardPageResponse, error)
	GetBoardsByTypePaged(ctx context.Context, boardType domain.BoardType, page, size int) (*dto.BoardPageResponse, error)
	GetBoardsByTypePagedForUser(ctx context.Context, userID int64, boardType domain.BoardType, page, size int) (*dto.BoardPageResponse, error)
	UpdateBoard(ctx context.Context, boardID int64, req *dto.BoardUpdateRequest) (*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, boardID int64) error
	GetBoardStats(ctx context.Context) (*dto.BoardStatsResponse, error)
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo   repository.BoardRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.BoardLikeRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.BoardLikeRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo:   boardRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateBoard creates a new board after checking the author's write permission
// for the requested board type.
func (s *boardServiceImpl) CreateBoard(ctx context.Context, req *dto.BoardCreateRequest) (*dto.BoardResponse, error) {
	// 작성자 조회
	author, err := s.userRepo.FindByID(ctx, req.AuthorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Author not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch author", err.Error())
	}

	// 게시판 타입별 작성 권한 검사
	if err := permission.CheckWrite(author.Role, req.BoardType); err != nil {
		if s.metrics != nil {
			s.metrics.IncrementPermissionDenied("write")
		}
		s.logger.Info("Board creation denied",
			zap.Int64("author_id", author.ID),
			zap.String("role", string(author.Role)),
			zap.String("board_type", string(req.BoardType)))
		return nil, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Title must not be blank", "")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Content must not be blank", "")
	}

	board := &domain.Board{
		BoardType: req.BoardType,
		Title:     req.Title,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		AuthorID:  author.ID,
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementBoardCreated(string(board.BoardType))
	}

	board.Author = *author
	return s.toBoardResponse(board, 0, 0), nil
}

// GetBoard retrieves a single board with its like and comment counts
func (s *boardServiceImpl) GetBoard(ctx context.Context, boardID int64) (*dto.BoardResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	likeCount, err := s.likeRepo.CountByBoardID(ctx, board.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count likes", err.Error())
	}
	commentCount, err := s.commentRepo.CountByBoardID(ctx, board.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}

	return s.toBoardResponse(board, likeCount, commentCount), nil
}

// GetAllBoards retrieves every board, newest first
func (s *boardServiceImpl) GetAllBoards(ctx context.Context) ([]dto.BoardResponse, error) {
	boards, err := s.boardRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch boards", err.Error())
	}
	return s.enrichBoardResponses(ctx, boards)
}

// GetBoardsByType retrieves every board of one type, newest first, without a
// permission check
func (s *boardServiceImpl) GetBoardsByType(ctx context.Context, boardType domain.BoardType) ([]dto.BoardResponse, error) {
	boards, err := s.boardRepo.FindByType(ctx, boardType)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch boards", err.Error())
	}
	return s.enrichBoardResponses(ctx, boards)
}

// pageOffset converts a zero-based page number to a row offset
func pageOffset(page, size int) int {
	return page * size
}

// GetBoardsPaged retrieves one page of boards across all board types
func (s *boardServiceImpl) GetBoardsPaged(ctx context.Context, page, size int) (*dto.BoardPageResponse, error) {
	boards, total, err := s.boardRepo.FindAllPaged(ctx, pageOffset(page, size), size)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch boards", err.Error())
	}
	return s.toBoardPageResponse(ctx, boards, page, size, total)
}

// GetBoardsPagedForUser retrieves one page of boards restricted to the board
// types the user's role may read. GENERAL users never see COMPANY boards here.
func (s *boardServiceImpl) GetBoardsPagedForUser(ctx context.Context, userID int64, page, size int) (*dto.BoardPageResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	readable := permission.AllowedReadCategories(user.Role)
	boards, total, err := s.boardRepo.FindByTypesPaged(ctx, readable, pageOffset(page, size), size)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch boards", err.Error())
	}
	return s.toBoardPageResponse(ctx, boards, page, size, total)
}

// GetBoardsByTypePaged retrieves one page of a single board type without a
// permission check.
func (s *boardServiceImpl) GetBoardsByTypePaged(ctx context.Context, boardType domain.BoardType, page, size int) (*dto.BoardPageResponse, error) {
	boards, total, err := s.boardRepo.FindByTypePaged(ctx, boardType, pageOffset(page, size), size)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch boards", err.Error())
	}
	return s.toBoardPageResponse(ctx, boards, page, size, total)
}

// GetBoardsByTypePagedForUser checks the user's read permission for the board
// type before listing it.
func (s *boardServiceImpl) GetBoardsByTypePagedForUser(ctx context.Context, userID int64, boardType domain.BoardType, page, size int) (*dto.BoardPageResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if err := permission.CheckRead(user.Role, boardType); err != nil {
		if s.metrics != nil {
			s.metrics.IncrementPermissionDenied("read")
		}
		s.logger.Info("Board listing denied",
			zap.Int64("user_id", user.ID),
			zap.String("role", string(user.Role)),
			zap.String("board_type", string(boardType)))
		return nil, err
	}

	return s.GetBoardsByTypePaged(ctx, boardType, page, size)
}

// UpdateBoard replaces a board's title, content and board type. The author is
// immutable and no re-authorization is performed on update.
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, boardID int64, req *dto.BoardUpdateRequest) (*dto.BoardResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	board.Title = req.Title
	board.Content = req.Content
	board.BoardType = req.BoardType

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update board", err.Error())
	}

	likeCount, err := s.likeRepo.CountByBoardID(ctx, board.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count likes", err.Error())
	}
	commentCount, err := s.commentRepo.CountByBoardID(ctx, board.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}

	return s.toBoardResponse(board, likeCount, commentCount), nil
}

// DeleteBoard removes a board. Its comments and likes are removed by the
// schema-level foreign key cascade, not by application logic.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, boardID int64) error {
	_, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify board", err.Error())
	}

	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete board", err.Error())
	}

	s.logger.Info("Board deleted", zap.Int64("board_id", boardID))
	return nil
}

// GetBoardStats returns the number of boards per board type plus a TOTAL key
func (s *boardServiceImpl) GetBoardStats(ctx context.Context) (*dto.BoardStatsResponse, error) {
	counts, err := s.boardRepo.CountByType(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count boards", err.Error())
	}

	boardCounts := make(map[string]int64, len(domain.AllBoardTypes())+1)
	var total int64
	for _, bt := range domain.AllBoardTypes() {
		count := counts[bt]
		boardCounts[string(bt)] = count
		total += count
	}
	boardCounts["TOTAL"] = total

	return &dto.BoardStatsResponse{BoardCounts: boardCounts}, nil
}

// enrichBoardResponses attaches like and comment counts to a board list using
// two grouped count queries instead of per-board lookups.
func (s *boardServiceImpl) enrichBoardResponses(ctx context.Context, boards []*domain.Board) ([]dto.BoardResponse, error) {
	if len(boards) == 0 {
		return []dto.BoardResponse{}, nil
	}

	ids := make([]int64, len(boards))
	for i, b := range boards {
		ids[i] = b.ID
	}

	likeCounts, err := s.likeRepo.CountByBoardIDs(ctx, ids)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count likes", err.Error())
	}
	commentCounts, err := s.commentRepo.CountByBoardIDs(ctx, ids)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}

	responses := make([]dto.BoardResponse, len(boards))
	for i, b := range boards {
		responses[i] = *s.toBoardResponse(b, likeCounts[b.ID], commentCounts[b.ID])
	}
	return responses, nil
}

// toBoardPageResponse builds the page envelope for a board listing
func (s *boardServiceImpl) toBoardPageResponse(ctx context.Context, boards []*domain.Board, page, size int, total int64) (*dto.BoardPageResponse, error) {
	items, err := s.enrichBoardResponses(ctx, boards)
	if err != nil {
		return nil, err
	}

	p := pagination.New(page, size, total)
	return &dto.BoardPageResponse{
		Boards:        items,
		CurrentPage:   p.Number,
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
		Size:          p.Size,
		First:         p.First,
		Last:          p.Last,
		HasNext:       p.HasNext,
		HasPrevious:   p.HasPrevious,
	}, nil
}

// toBoardResponse converts domain.Board to dto.BoardResponse
func (s *boardServiceImpl) toBoardResponse(board *domain.Board, likeCount, commentCount int64) *dto.BoardResponse {
	return &dto.BoardResponse{
		ID:             board.ID,
		BoardType:      board.BoardType,
		Title:          board.Title,
		Content:        board.Content,
		ImageURL:       board.ImageURL,
		AuthorID:       board.AuthorID,
		AuthorNickname: board.Author.Nickname,
		LikeCount:      likeCount,
		CommentCount:   commentCount,
		CreatedAt:      board.CreatedAt,
		UpdatedAt:      board.UpdatedAt,
	}
}
