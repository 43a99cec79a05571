package sqlitedb

import (
	"context"
)

const getPostWithMeta = `
SELECT p.id, p.title, p.status,
       COALESCE((SELECT meta_value FROM post_meta WHERE post_id = p.id AND meta_key = 'file_url'), '') AS file_url,
       COALESCE((SELECT meta_value FROM post_meta WHERE post_id = p.id AND meta_key = 'zipping_status'), '') AS zipping_status
FROM posts p
WHERE p.id = ?
`

func (q *Queries) GetPostWithMeta(ctx context.Context, id int64) (PostWithMeta, error) {
	row := q.db.QueryRowContext(ctx, getPostWithMeta, id)
	var i PostWithMeta
	err := row.Scan(&i.ID, &i.Title, &i.Status, &i.FileUrl, &i.ZippingStatus)
	return i, err
}

const insertPost = `
INSERT INTO posts (title, name, status)
VALUES (?, ?, ?)
RETURNING id, title, name, status
`

type InsertPostParams struct {
	Title  string
	Name   string
	Status string
}

func (q *Queries) InsertPost(ctx context.Context, arg InsertPostParams) (Post, error) {
	row := q.db.QueryRowContext(ctx, insertPost, arg.Title, arg.Name, arg.Status)
	var i Post
	err := row.Scan(&i.ID, &i.Title, &i.Name, &i.Status)
	return i, err
}

const updatePostStatus = `
UPDATE posts SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`

type UpdatePostStatusParams struct {
	Status string
	ID     int64
}

func (q *Queries) UpdatePostStatus(ctx context.Context, arg UpdatePostStatusParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updatePostStatus, arg.Status, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const upsertPostMeta = `
INSERT INTO post_meta (post_id, meta_key, meta_value)
VALUES (?, ?, ?)
ON CONFLICT (post_id, meta_key) DO UPDATE SET meta_value = excluded.meta_value
`

type UpsertPostMetaParams struct {
	PostID    int64
	MetaKey   string
	MetaValue string
}

func (q *Queries) UpsertPostMeta(ctx context.Context, arg UpsertPostMetaParams) error {
	_, err := q.db.ExecContext(ctx, upsertPostMeta, arg.PostID, arg.MetaKey, arg.MetaValue)
	return err
}

const listPostIDsByMeta = `
SELECT post_id FROM post_meta
WHERE meta_key = ? AND meta_value = ?
ORDER BY post_id
`

type ListPostIDsByMetaParams struct {
	MetaKey   string
	MetaValue string
}

func (q *Queries) ListPostIDsByMeta(ctx context.Context, arg ListPostIDsByMetaParams) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, listPostIDsByMeta, arg.MetaKey, arg.MetaValue)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
