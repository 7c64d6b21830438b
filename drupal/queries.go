package drupal

// GraphQL documents for the Drupal content schema. Field names follow the
// vendor's schema verbatim.

const articlesQuery = `
query Articles($first: Int!) {
  nodeArticles(first: $first) {
    nodes {
      id
      title
      path
      created { time }
      body { processed }
      summary { value }
      category
      tags
      readTime
      image { url alt width height }
    }
  }
}`

const articleByPathQuery = `
query ArticleByPath($path: String!) {
  route(path: $path) {
    ... on RouteInternal {
      entity {
        ... on NodeArticle {
          id
          title
          path
          created { time }
          body { processed }
          summary { value }
          category
          tags
          readTime
          image { url alt width height }
        }
      }
    }
  }
}`
