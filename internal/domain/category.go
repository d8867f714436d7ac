package domain

// CategoryAll — сентинел «без фильтра» для списка категорий.
const CategoryAll = "All"
